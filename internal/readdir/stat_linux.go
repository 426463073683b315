//go:build linux

package readdir

import (
	"time"

	"golang.org/x/sys/unix"
)

// lstatEntry captures a snapshot of name without following symlinks.
// The name is resolved relative to the current working directory, which
// Read has already changed into the directory being listed.
func lstatEntry(name string) (*Snapshot, error) {
	var st unix.Stat_t
	if err := unix.Lstat(name, &st); err != nil {
		return nil, err
	}
	return &Snapshot{
		dev:   uint64(st.Dev),
		ino:   st.Ino,
		mode:  st.Mode,
		nlink: uint64(st.Nlink),
		size:  st.Size,
		mtime: time.Unix(st.Mtim.Unix()),
		ctime: time.Unix(st.Ctim.Unix()),
	}, nil
}
