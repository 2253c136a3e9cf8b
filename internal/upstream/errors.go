package upstream

import (
	"errors"
	"fmt"
)

// FetchError reports a failed upstream call: network failure, non-2xx
// status, or a malformed JSON body. It carries the upstream identifier the
// call was routed with. Fetches are never retried here; callers decide
// whether to skip or surface the failure.
type FetchError struct {
	ID  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("upstream fetch %q: %v", e.ID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
