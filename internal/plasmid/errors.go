package plasmid

import "errors"

var (
	// ErrArity is returned when a command gets the wrong number of arguments
	ErrArity = errors.New("wrong number of arguments")

	// ErrUnknownFeature is returned, in strict mode, for a feature that's in neither catalog
	ErrUnknownFeature = errors.New("unrecognized feature")

	// ErrEmptyReference is returned when a reference file has no sequence in it
	ErrEmptyReference = errors.New("no sequence in reference file")
)
