package readdir

import "errors"

// Sentinel errors classifying every way a directory read can fail.
// Returned errors wrap both the sentinel and the underlying OS error, so
// callers can test the failure class with errors.Is and still reach the
// errno underneath with errors.As.
var (
	// ErrUnavailable means the target directory could not be opened:
	// it is missing, not a directory, or permission was denied.
	ErrUnavailable = errors.New("directory unavailable")

	// ErrReadDir means the entry stream failed mid-iteration.
	ErrReadDir = errors.New("directory read error")

	// ErrStat means an entry's status lookup failed for some reason
	// other than the entry having vanished since it was listed.
	ErrStat = errors.New("entry status error")

	// ErrCloseDir means the directory stream could not be closed.
	ErrCloseDir = errors.New("directory close error")

	// ErrRestoreWorkdir means the original working directory could not
	// be restored or its saved handle could not be closed. It takes
	// priority over any error produced by the read body.
	ErrRestoreWorkdir = errors.New("working directory restore error")
)
