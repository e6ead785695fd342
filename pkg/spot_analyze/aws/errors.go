package aws

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrTransport the advisor data source is unreachable or answered non-200
	ErrTransport = errors.New("advisor data unavailable")

	// ErrMalformed the advisor data does not have the expected structure
	ErrMalformed = errors.New("advisor data malformed")

	// ErrUnknownRegion the queried region is not in the dataset
	ErrUnknownRegion = errors.New("unknown region")

	// ErrInvalidPattern the family pattern does not compile
	ErrInvalidPattern = errors.New("invalid family pattern")

	// ErrUnknownProcessor the processor family is not in the taxonomy
	ErrUnknownProcessor = errors.New("unknown processor family")

	// ErrInvalidSort the sort key is not name, avail or vcpucount
	ErrInvalidSort = errors.New("invalid sort key")
)

// FetchError is returned by Fetch. Kind is ErrTransport or ErrMalformed.
type FetchError struct {
	Kind   error
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Source, e.Err)
}

func (e *FetchError) Is(target error) bool { return target == e.Kind }

func (e *FetchError) Unwrap() error { return e.Err }

// SelectionError is returned by Select. Kind is ErrUnknownRegion, ErrInvalidPattern,
// ErrUnknownProcessor or ErrInvalidSort.
type SelectionError struct {
	Kind  error
	Value string
	Err   error
}

func (e *SelectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v %q: %v", e.Kind, e.Value, e.Err)
	}
	return fmt.Sprintf("%v %q", e.Kind, e.Value)
}

func (e *SelectionError) Is(target error) bool { return target == e.Kind }

func (e *SelectionError) Unwrap() error { return e.Err }
