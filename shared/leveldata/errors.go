package leveldata

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownShapeTag is returned by Classify for an unrecognised tile tag.
	ErrUnknownShapeTag = errors.New("unknown collision shape tag")

	// ErrNotPolygon is returned when polygon points are requested from a
	// rectangular object.
	ErrNotPolygon = errors.New("object is not a polygon")
)

// MapLoadError reports that the level source for an index could not be read.
type MapLoadError struct {
	Index int
	Path  string
	Err   error
}

func (e *MapLoadError) Error() string {
	return fmt.Sprintf("load level %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *MapLoadError) Unwrap() error { return e.Err }

// InvalidLevelError reports a structurally malformed level.
type InvalidLevelError struct {
	Index  int
	Reason string
	Err    error
}

func (e *InvalidLevelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid level %d: %s: %v", e.Index, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid level %d: %s", e.Index, e.Reason)
}

func (e *InvalidLevelError) Unwrap() error { return e.Err }

func invalid(index int, err error, format string, args ...any) *InvalidLevelError {
	return &InvalidLevelError{Index: index, Reason: fmt.Sprintf(format, args...), Err: err}
}
