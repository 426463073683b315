package readdir

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Read lists the immediate entries of path, excluding "." and "..", and
// attaches a status snapshot to each. Records come back in the raw
// enumeration order the filesystem returned them in, with Kind and the
// path fields unset; most callers want ReadDir, which finishes them.
//
// An entry deleted between being listed and being statted is not an
// error: its record comes back with Kind KindMissing and a nil Stat.
// Every other failure aborts the whole call and discards any records
// collected so far.
func Read(path string) (entries []Entry, err error) {
	chdired := false
	var cwd *os.File
	if path != "" && path != "." {
		cwd, err = os.Open(".")
		if err != nil {
			return nil, fmt.Errorf("%w: saving working directory: %w", ErrUnavailable, err)
		}
		if err = os.Chdir(path); err != nil {
			cwd.Close()
			return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
		}
		chdired = true
	}
	defer func() {
		if !chdired {
			return
		}
		if rerr := restoreWorkdir(cwd); rerr != nil {
			// Release failures outrank whatever the body produced:
			// a process stranded in the wrong directory corrupts
			// every relative path that follows.
			entries = nil
			err = fmt.Errorf("%w: %w", ErrRestoreWorkdir, rerr)
		}
	}()

	target := path
	if chdired {
		target = "."
	}
	stream, err := openStream(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}

	for {
		name, ino, nerr := stream.Next()
		if nerr == io.EOF {
			break
		}
		if nerr != nil {
			stream.Close()
			return nil, fmt.Errorf("%w: %s: %w", ErrReadDir, path, nerr)
		}
		if name == "." || name == ".." {
			continue
		}

		rec := Entry{Ino: ino, Name: name}
		snap, serr := lstatEntry(statPath(chdired, path, name))
		switch {
		case serr == nil:
			rec.Stat = snap
			if rec.Ino == 0 {
				rec.Ino = snap.ino
			}
		case errors.Is(serr, fs.ErrNotExist):
			// Deleted after being listed. Inherent race in any
			// directory read; degrade the record and keep going.
			rec.Kind = KindMissing
		default:
			stream.Close()
			return nil, fmt.Errorf("%w: %s: %w", ErrStat, joinPath(path, name), serr)
		}
		entries = append(entries, rec)
	}

	if cerr := stream.Close(); cerr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCloseDir, path, cerr)
	}
	return entries, nil
}

// ReadDir lists the directory at top and finishes each record: Path
// becomes prefix/name, AbsPath becomes top/name, and Kind is classified
// from the snapshot's mode bits. prefix is the path of top relative to
// the traversal root, so a multi-level walk can reuse this call one
// directory at a time and still hand out root-relative paths. Vanished
// entries keep KindMissing and never reach the classifier.
func ReadDir(prefix, top string) ([]Entry, error) {
	entries, err := Read(top)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		e := &entries[i]
		e.Path = joinPath(prefix, e.Name)
		e.AbsPath = joinPath(top, e.Name)
		if e.Stat != nil {
			e.Kind = KindFromMode(e.Stat.mode)
		}
	}
	return entries, nil
}

// StartingDir builds the seed record a recursive walker begins from: a
// directory record for top itself, carrying prefix as its root-relative
// path.
func StartingDir(top, prefix string) Entry {
	return Entry{Kind: KindDirectory, Path: prefix, AbsPath: top}
}

// restoreWorkdir returns the process to the directory saved in cwd and
// releases the handle. The chdir failure wins if both fail.
func restoreWorkdir(cwd *os.File) error {
	err := cwd.Chdir()
	if cerr := cwd.Close(); err == nil {
		err = cerr
	}
	return err
}

// statPath picks the cheapest name the entry can be statted under:
// the bare name once the reader has changed into dir, the joined path
// otherwise.
func statPath(chdired bool, dir, name string) string {
	if chdired {
		return name
	}
	return joinPath(dir, name)
}

// joinPath joins with a forward slash without cleaning either side.
// Entry names never contain separators, and prefix and top are expected
// to pass through verbatim.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
