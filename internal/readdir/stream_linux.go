//go:build linux

package readdir

import (
	"errors"
	"io"
	"unsafe"

	"golang.org/x/sys/unix"
)

// direntBufSize matches the 32 KiB buffer glibc uses for readdir.
const direntBufSize = 32 * 1024

// Offsets within a linux_dirent64 record: d_ino at 0, d_off at 8,
// d_reclen at 16, d_type at 18, d_name (NUL-terminated) from 19.
const direntHeaderSize = 19

var errBadDirent = errors.New("invalid dirent record")

// linuxStream reads raw entries with getdents64, one kernel batch at a
// time.
type linuxStream struct {
	fd  int
	buf []byte
	pos int
	n   int
	// seen is set once a batch has produced entries. Some filesystems
	// report ENOTDIR when a drained stream is read again; after a
	// successful batch that is end-of-stream, not a failure.
	seen bool
}

func openDirStream(path string) (dirStream, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	return &linuxStream{fd: fd, buf: make([]byte, direntBufSize)}, nil
}

func (s *linuxStream) Next() (string, uint64, error) {
	for s.pos >= s.n {
		n, err := unix.Getdents(s.fd, s.buf)
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err == unix.ENOTDIR && s.seen {
			return "", 0, io.EOF
		}
		if err != nil {
			return "", 0, err
		}
		if n == 0 {
			return "", 0, io.EOF
		}
		s.pos, s.n = 0, n
		s.seen = true
	}

	rec := s.buf[s.pos:s.n]
	if len(rec) < direntHeaderSize {
		return "", 0, errBadDirent
	}
	ino := *(*uint64)(unsafe.Pointer(&rec[0]))
	reclen := int(*(*uint16)(unsafe.Pointer(&rec[16])))
	if reclen < direntHeaderSize || reclen > len(rec) {
		return "", 0, errBadDirent
	}

	name := rec[direntHeaderSize:reclen]
	for i, b := range name {
		if b == 0 {
			name = name[:i]
			break
		}
	}
	s.pos += reclen
	return string(name), ino, nil
}

func (s *linuxStream) Close() error {
	return unix.Close(s.fd)
}
