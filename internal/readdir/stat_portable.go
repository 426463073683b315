//go:build unix && !linux

package readdir

import (
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// lstatEntry captures a snapshot of name without following symlinks,
// using the stdlib stat path. Identity fields come from the underlying
// Stat_t when the platform exposes one; the change time is not portably
// observable here and is left zero when it cannot be read.
func lstatEntry(name string) (*Snapshot, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{
		mode:  modeBits(info.Mode()),
		size:  info.Size(),
		mtime: info.ModTime(),
	}
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		snap.dev = uint64(st.Dev)
		snap.ino = st.Ino
		snap.mode = uint32(st.Mode)
		snap.nlink = uint64(st.Nlink)
	}
	return snap, nil
}

// modeBits synthesizes raw POSIX mode bits from an fs.FileMode, for the
// rare case where Sys() does not yield a Stat_t.
func modeBits(m fs.FileMode) uint32 {
	bits := uint32(m.Perm())
	switch {
	case m.IsRegular():
		bits |= unix.S_IFREG
	case m&fs.ModeDir != 0:
		bits |= unix.S_IFDIR
	case m&fs.ModeSymlink != 0:
		bits |= unix.S_IFLNK
	case m&fs.ModeCharDevice != 0:
		bits |= unix.S_IFCHR
	case m&fs.ModeDevice != 0:
		bits |= unix.S_IFBLK
	case m&fs.ModeNamedPipe != 0:
		bits |= unix.S_IFIFO
	case m&fs.ModeSocket != 0:
		bits |= unix.S_IFSOCK
	}
	return bits
}
