// Package readdir lists the immediate entries of a single directory and
// attaches file status metadata and a classified kind to each one. It is
// the per-directory primitive a recursive walker is built from: Read
// performs the raw enumeration, ReadDir finishes the records with path
// fields and kinds, and StartingDir produces the seed record a walk
// begins with.
//
// The reader temporarily changes the process-wide working directory so
// entries can be statted by bare name, which is measurably cheaper than
// building a full path for every status call. The original directory is
// always restored before returning, but the change itself is visible to
// every goroutine in the process, so calls must not run concurrently
// without external synchronization.
package readdir

// Entry is one directory entry enriched with status metadata. Records
// are populated in two passes: Read fills Ino, Name and Stat; ReadDir
// fills Path, AbsPath and Kind. A record is fully owned by the caller
// once returned and holds no reference back into the reader.
type Entry struct {
	// Ino is the inode number reported by the directory stream,
	// available before any status lookup so callers can preserve the
	// on-disk enumeration order cheaply. When the stream cannot supply
	// it, Read backfills it from the status snapshot.
	Ino uint64

	// Name is the raw entry name exactly as the filesystem returned it.
	// Never "." or "..".
	Name string

	// Kind classifies the entry. Read leaves it as KindUnset except for
	// vanished entries, which it marks KindMissing; ReadDir classifies
	// the rest from the snapshot's mode bits.
	Kind Kind

	// Stat is the entry's status snapshot. It is nil exactly when the
	// entry was deleted between being listed and being statted, in
	// which case Kind is KindMissing.
	Stat *Snapshot

	// Path is the entry's path relative to the traversal root, i.e.
	// prefix/name. Set by ReadDir.
	Path string

	// AbsPath is the entry's path under the directory that was read,
	// i.e. top/name. Set by ReadDir.
	AbsPath string
}
