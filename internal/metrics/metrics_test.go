package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksUpstreamCallsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamCall("/api/v1/teams", 10*time.Millisecond, nil)
	rec.RecordUpstreamCall("/api/v1/teams", 15*time.Millisecond, errors.New("boom"))

	snap := rec.Snapshot("/api/v1/teams")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastCallLatency)
	}
	if other := rec.Snapshot("/api/v1/venues/:id"); other.Calls != 0 {
		t.Fatalf("expected untouched endpoint to be empty, got %+v", other)
	}
}

func TestRecorderCountsReportsByOutcome(t *testing.T) {
	rec := NewRecorder()
	rec.RecordReport(OutcomeOK, time.Millisecond)
	rec.RecordReport(OutcomeOK, time.Millisecond)
	rec.RecordReport(OutcomeNotFound, time.Millisecond)

	if got := rec.Reports(OutcomeOK); got != 2 {
		t.Fatalf("expected 2 ok reports, got %d", got)
	}
	if got := rec.Reports(OutcomeNotFound); got != 1 {
		t.Fatalf("expected 1 not found report, got %d", got)
	}
	if got := rec.Reports(OutcomeError); got != 0 {
		t.Fatalf("expected no error reports, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamCall("/api/v1/teams", time.Millisecond, nil)
	rec.RecordReport(OutcomeOK, time.Millisecond)
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	if snap := rec.Snapshot("/api/v1/teams"); snap.Calls != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
	if rec.Reports(OutcomeOK) != 0 {
		t.Fatal("expected zero reports from nil recorder")
	}
}
