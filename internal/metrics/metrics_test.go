package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecordUpstreamCallTracksCallsAndErrors(t *testing.T) {
	rec := NewRecorder()

	rec.RecordUpstreamCall("sportsdb", 10*time.Millisecond, nil)
	rec.RecordUpstreamCall("sportsdb", 20*time.Millisecond, errors.New("boom"))

	snap := rec.Snapshot("sportsdb")
	if snap.Calls != 2 {
		t.Fatalf("expected 2 calls, got %d", snap.Calls)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error, got %d", snap.Errors)
	}
	if snap.LastCallLatency != 20*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %v", snap.LastCallLatency)
	}
}

func TestRecordCacheLookupCounts(t *testing.T) {
	rec := NewRecorder()

	rec.RecordCacheLookup(true)
	rec.RecordCacheLookup(false)
	rec.RecordCacheLookup(false)

	hits, misses := rec.CacheLookups()
	if hits != 1 || misses != 2 {
		t.Fatalf("expected 1 hit / 2 misses, got %d/%d", hits, misses)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	rec.RecordUpstreamCall("sportsdb", time.Millisecond, nil)
	rec.RecordCacheLookup(true)
	rec.RecordDigestCycle(time.Millisecond, 1)
	rec.RecordHTTPRequest("GET", "/fixtures/today", 200, time.Millisecond)

	if snap := rec.Snapshot("sportsdb"); snap.Calls != 0 {
		t.Fatalf("expected zero snapshot from nil recorder, got %+v", snap)
	}
}

func TestSetupDisabledReturnsWorkingRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected shutdown to be a no-op, got %v", err)
	}
}

func TestSetupEnabledExposesPrometheusHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}
	}()

	if handler == nil {
		t.Fatal("expected a prometheus handler")
	}
	rec.RecordUpstreamCall("sportsdb", time.Millisecond, nil)
	if snap := rec.Snapshot("sportsdb"); snap.Calls != 1 {
		t.Fatalf("expected recorded call, got %+v", snap)
	}
}
