package readdir

import "golang.org/x/sys/unix"

// Kind is the classified type of a directory entry.
type Kind int

const (
	// KindUnset marks a record that has not been through classification.
	KindUnset Kind = iota
	KindFile
	KindDirectory
	KindCharDevice
	KindBlockDevice
	KindSymlink
	KindFIFO
	KindSocket
	// KindUnknown marks mode bits matching no known entry type.
	KindUnknown
	// KindMissing marks an entry that vanished between listing and stat.
	KindMissing
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindCharDevice:
		return "chardevice"
	case KindBlockDevice:
		return "block"
	case KindSymlink:
		return "symlink"
	case KindFIFO:
		return "fifo"
	case KindSocket:
		return "socket"
	case KindMissing:
		return "missing"
	case KindUnset:
		return "unset"
	default:
		return "unknown"
	}
}

// KindFromMode classifies raw POSIX mode bits. Cases are ordered by how
// common each type is in practice; regular files and directories
// dominate any real tree.
func KindFromMode(mode uint32) Kind {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return KindFile
	case unix.S_IFDIR:
		return KindDirectory
	case unix.S_IFCHR:
		return KindCharDevice
	case unix.S_IFBLK:
		return KindBlockDevice
	case unix.S_IFLNK:
		return KindSymlink
	case unix.S_IFIFO:
		return KindFIFO
	case unix.S_IFSOCK:
		return KindSocket
	default:
		return KindUnknown
	}
}
