package release

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a malformed version string.
	ErrParse = errors.New("invalid version")

	// ErrNotFound indicates the feed holds no eligible release.
	ErrNotFound = errors.New("no release found")

	// ErrNetwork classifies feed fetch failures; see NetworkError.
	ErrNetwork = errors.New("failed to get latest release")
)

// NetworkError describes a failed feed request. It matches ErrNetwork with
// errors.Is and unwraps to the underlying transport or decode error.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s returned status %d", ErrNetwork, e.URL, e.Status)
	}
	return fmt.Sprintf("%s: %v", ErrNetwork, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is lets callers match any NetworkError against ErrNetwork.
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
