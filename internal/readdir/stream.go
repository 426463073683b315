package readdir

// dirStream iterates the raw entries of one open directory. What counts
// as end-of-stream differs between platforms; those decisions live
// entirely inside the adapter behind this interface.
type dirStream interface {
	// Next returns the next raw entry name and its inode number, or
	// io.EOF once the stream is exhausted. Transient interrupted and
	// would-block conditions are retried internally and never surface.
	// Dot entries are not filtered at this layer. Adapters that cannot
	// observe inode numbers return 0.
	Next() (name string, ino uint64, err error)

	// Close releases the underlying directory handle.
	Close() error
}

// openStream points at the platform adapter. Tests swap it to inject
// stream failures.
var openStream = openDirStream
