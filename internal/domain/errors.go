package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports an unknown team or sport key.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

// AsNotFound attempts to unwrap an error into a NotFoundError.
func AsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// ConfigError reports a known team whose catalog entry is missing the
// routing fields required to reach an upstream.
type ConfigError struct {
	Team    string
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("team %q: missing %s", e.Team, e.Missing)
}

// AsConfigError attempts to unwrap an error into a ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
