//go:build unix && !linux

package readdir

import (
	"io"
	"os"
)

// streamChunk is how many names are pulled from the kernel per batch.
const streamChunk = 256

// portableStream falls back to the stdlib directory iterator on unix
// platforms without getdents64. Readdirnames already hides the
// drained-stream quirks this layer otherwise has to absorb, and it never
// reports inode numbers; Read backfills those from the status snapshot.
type portableStream struct {
	f     *os.File
	names []string
	pos   int
	done  bool
}

func openDirStream(path string) (dirStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &portableStream{f: f}, nil
}

func (s *portableStream) Next() (string, uint64, error) {
	for s.pos >= len(s.names) {
		if s.done {
			return "", 0, io.EOF
		}
		names, err := s.f.Readdirnames(streamChunk)
		if err == io.EOF {
			s.done = true
		} else if err != nil {
			return "", 0, err
		}
		s.names, s.pos = names, 0
	}
	name := s.names[s.pos]
	s.pos++
	return name, 0, nil
}

func (s *portableStream) Close() error {
	return s.f.Close()
}
