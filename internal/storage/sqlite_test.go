package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Player: "ada", Level: 2, Score: 3}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 3 {
		t.Errorf("Expected best score 3 after reopen, got %d", best)
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "ada", Level: 2, Phase: 0, Score: 3, Turns: 30, Captured: 4},
		{Player: "bob", Level: 3, Phase: 1, Score: 6, Turns: 80},
		{Player: "ada", Level: 3, Phase: 1, Score: 6, Turns: 60, Captured: 9},
		{Player: "cy", Level: 1, Phase: 0, Score: 1, Turns: 5},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Same score: fewer turns first
	if top[0].Player != "ada" || top[0].Turns != 60 {
		t.Errorf("Expected ada/60 first, got %s/%d", top[0].Player, top[0].Turns)
	}
	if top[1].Player != "bob" {
		t.Errorf("Expected bob second, got %s", top[1].Player)
	}
	if top[2].Score != 3 {
		t.Errorf("Expected score 3 third, got %d", top[2].Score)
	}
	if top[0].Captured != 9 || top[0].Phase != 1 || top[0].Level != 3 {
		t.Errorf("Fields not round-tripped: %+v", top[0])
	}
}

func TestPlayerRuns(t *testing.T) {
	store := openTestStore(t)

	for i, p := range []string{"ada", "bob", "ada"} {
		if _, err := store.SaveRun(Run{Player: p, Level: 1, Score: i + 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.PlayerRuns("ada", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	// Most recent first
	if runs[0].Score != 3 || runs[1].Score != 1 {
		t.Errorf("Unexpected order: %+v", runs)
	}
}

func TestBestScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %d", best)
	}
}

func TestClearRunsAndStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "ada", Level: 2, Score: 4, Captured: 5})
	store.SaveRun(Run{Player: "bob", Level: 1, Score: 2, Captured: 1})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 4 || stats.AvgScore != 3 || stats.Captured != 6 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats after clear, got %+v", stats)
	}
}
