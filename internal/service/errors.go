package service

import "errors"

// Sentinel errors for the fixed failure taxonomy spec.md §7 assigns to the
// enclosing façade. The compare core itself (internal/compare) is total and
// never returns an error; these only ever originate at the I/O boundary
// this package owns.
var (
	// ErrUnsupportedInput means no Parser accepts the given file.
	ErrUnsupportedInput = errors.New("service: unsupported input format")
	// ErrUnsupportedOutput means no Generator matches the requested output
	// format. Only "word" is implemented; PDF/HTML generation is out of
	// scope (spec.md's "Out of scope (external collaborators)", item iii).
	ErrUnsupportedOutput = errors.New("service: unsupported output format")
	// ErrParse means a Parser rejected the file's contents.
	ErrParse = errors.New("service: parse failure")
	// ErrWrite means a Generator could not serialize the result.
	ErrWrite = errors.New("service: write failure")
)
