package main

import "testing"

func TestRunExitCodes(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("PROJECT_ROOT", t.TempDir())

	if code := run([]string{"--help"}); code != 0 {
		t.Fatalf("expected help to exit 0, got %d", code)
	}
	if code := run([]string{"bogus"}); code != 1 {
		t.Fatalf("expected unknown command to exit 1, got %d", code)
	}
	if code := run([]string{"generate", "--yes", "--home-count", "1", "--away-count", "1"}); code != 0 {
		t.Fatalf("expected generate to exit 0, got %d", code)
	}
}
