package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsNotFoundUnwraps(t *testing.T) {
	base := &NotFoundError{Kind: "team", Key: "nope"}
	wrapped := fmt.Errorf("handling request: %w", base)

	nf, ok := AsNotFound(wrapped)
	if !ok {
		t.Fatal("expected unwrap to succeed")
	}
	if nf.Kind != "team" || nf.Key != "nope" {
		t.Fatalf("unexpected error %+v", nf)
	}

	if _, ok := AsNotFound(errors.New("plain")); ok {
		t.Fatal("expected plain error not to match")
	}
}

func TestAsConfigErrorUnwraps(t *testing.T) {
	base := &ConfigError{Team: "ghosts", Missing: "upstream identifier"}
	wrapped := fmt.Errorf("fetch: %w", base)

	ce, ok := AsConfigError(wrapped)
	if !ok {
		t.Fatal("expected unwrap to succeed")
	}
	if ce.Team != "ghosts" {
		t.Fatalf("unexpected error %+v", ce)
	}
}

func TestErrorMessages(t *testing.T) {
	nf := &NotFoundError{Kind: "sport", Key: "cricket"}
	if nf.Error() != `unknown sport "cricket"` {
		t.Fatalf("unexpected message %q", nf.Error())
	}

	ce := &ConfigError{Team: "ghosts", Missing: "upstream identifier"}
	if ce.Error() != `team "ghosts": missing upstream identifier` {
		t.Fatalf("unexpected message %q", ce.Error())
	}
}
