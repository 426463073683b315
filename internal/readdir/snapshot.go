package readdir

import "time"

// Snapshot is an immutable capture of one entry's lstat result at the
// moment the directory was read. Each snapshot belongs to exactly one
// Entry; nothing mutates it after construction.
type Snapshot struct {
	dev   uint64
	ino   uint64
	mode  uint32
	nlink uint64
	size  int64
	mtime time.Time
	ctime time.Time
}

// NewSnapshot builds a snapshot from explicit field values. The reader
// captures snapshots itself via lstat; this exists so fakes can supply
// canned metadata.
func NewSnapshot(dev, ino uint64, mode uint32, nlink uint64, size int64, mtime, ctime time.Time) *Snapshot {
	return &Snapshot{dev: dev, ino: ino, mode: mode, nlink: nlink, size: size, mtime: mtime, ctime: ctime}
}

// Dev returns the ID of the device containing the entry.
func (s *Snapshot) Dev() uint64 { return s.dev }

// Ino returns the entry's inode number.
func (s *Snapshot) Ino() uint64 { return s.ino }

// Mode returns the raw POSIX mode bits, type bits included.
func (s *Snapshot) Mode() uint32 { return s.mode }

// Nlink returns the number of hard links.
func (s *Snapshot) Nlink() uint64 { return s.nlink }

// Size returns the entry size in bytes.
func (s *Snapshot) Size() int64 { return s.size }

// ModTime returns the last modification time.
func (s *Snapshot) ModTime() time.Time { return s.mtime }

// ChangeTime returns the last inode change time. On platforms where the
// fallback stat path cannot observe it, the zero time is returned.
func (s *Snapshot) ChangeTime() time.Time { return s.ctime }
