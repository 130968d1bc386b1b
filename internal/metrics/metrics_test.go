package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksScoringOpsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordScoringOp("bowl", 10*time.Millisecond, nil)
	rec.RecordScoringOp("bowl", 15*time.Millisecond, errors.New("boom"))

	if got := rec.OpCalls("bowl"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.OpErrors("bowl"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("bowl")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastLatency)
	}
}

func TestRecorderSeparatesOperations(t *testing.T) {
	rec := NewRecorder()
	rec.RecordScoringOp("toss", time.Millisecond, nil)
	rec.RecordScoringOp("declare", time.Millisecond, nil)

	if got := rec.OpCalls("toss"); got != 1 {
		t.Fatalf("expected 1 toss call, got %d", got)
	}
	if got := rec.OpCalls("declare"); got != 1 {
		t.Fatalf("expected 1 declare call, got %d", got)
	}
	if got := rec.OpCalls("over"); got != 0 {
		t.Fatalf("expected 0 over calls, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordScoringOp("bowl", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if got := rec.OpCalls("bowl"); got != 0 {
		t.Fatalf("expected nil recorder to report 0 calls, got %d", got)
	}
}

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "cricket-scoring-service",
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}
