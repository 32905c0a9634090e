package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksReconcileOutcomes(t *testing.T) {
	rec := NewRecorder()
	rec.RecordReconcile("team", "created")
	rec.RecordReconcile("team", "updated")
	rec.RecordReconcile("team", "updated")
	rec.RecordReconcile("player", "created")

	if got := rec.Reconciles("team", "updated"); got != 2 {
		t.Fatalf("expected 2 team updates, got %d", got)
	}
	if got := rec.Reconciles("player", "created"); got != 1 {
		t.Fatalf("expected 1 player create, got %d", got)
	}
	if got := rec.Reconciles("prefab", "created"); got != 0 {
		t.Fatalf("expected no prefab creates, got %d", got)
	}
}

func TestRecorderTracksBatches(t *testing.T) {
	rec := NewRecorder()
	rec.RecordBatch("import", 10*time.Millisecond, nil)
	rec.RecordBatch("import", 15*time.Millisecond, errors.New("boom"))

	snap := rec.Snapshot("import")
	if snap.Runs != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastLatency)
	}
	if got := rec.Snapshot("spawn"); got != (Snapshot{}) {
		t.Fatalf("expected empty snapshot, got %+v", got)
	}
}

func TestRecorderTracksSkipped(t *testing.T) {
	rec := NewRecorder()
	rec.RecordSkipped("unknown_team")
	rec.RecordSkipped("unknown_team")
	if got := rec.Skipped("unknown_team"); got != 2 {
		t.Fatalf("expected 2 skipped, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordReconcile("team", "created")
	rec.RecordSkipped("blank_id")
	rec.RecordBatch("generate", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/teams", 200, time.Millisecond)
	if rec.Reconciles("team", "created") != 0 || rec.Skipped("blank_id") != 0 {
		t.Fatal("expected zero counts from nil recorder")
	}
}
