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
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, level, acc int }{
		{100, 1, 40},
		{50, 1, 20},
		{200, 2, 65},
	} {
		if _, err := store.SaveScore("speedball", s.score, s.level, s.acc); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("other", 500, 4, 90); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("speedball", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Level != 2 || scores[0].Accuracy != 65 {
		t.Errorf("Expected level 2 accuracy 65, got level %d accuracy %d", scores[0].Level, scores[0].Accuracy)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreTieBreaksOnLevel(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("speedball", 300, 1, 50)
	store.SaveScore("speedball", 300, 3, 50)
	store.SaveScore("speedball", 300, 3, 10)

	scores, err := store.TopScores("speedball", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Level != 3 || scores[0].Accuracy != 50 {
		t.Errorf("Expected the older level 3 entry first, got %+v", scores[0])
	}
	if scores[2].Level != 1 {
		t.Errorf("Expected level 1 last, got %d", scores[2].Level)
	}
}

func TestStoreClampsValues(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("speedball", 10, 0, 140)
	scores, _ := store.TopScores("speedball", 1)
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	if scores[0].Level != 1 || scores[0].Accuracy != 100 {
		t.Errorf("Expected level 1 accuracy 100, got level %d accuracy %d", scores[0].Level, scores[0].Accuracy)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100, 1, 0)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("speedball", 300, 2, 0)
	store.SaveScore("speedball", 100, 1, 0)
	store.SaveScore("speedball", 200, 1, 0)

	scores, err := store.RecentScores("speedball", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 200 || scores[1].Score != 100 {
		t.Errorf("Expected the two newest scores, got %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("speedball")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("speedball", 100, 1, 0)
	store.SaveScore("speedball", 300, 2, 0)
	store.SaveScore("speedball", 200, 1, 0)

	high, err = store.HighScore("speedball")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("speedball", 100, 1, 0)
	store.SaveScore("speedball", 200, 1, 0)
	store.SaveScore("other", 300, 1, 0)

	if err := store.ClearScores("speedball"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("speedball", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game scores should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("speedball")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore("speedball", 100, 1, 40)
	store.SaveScore("speedball", 300, 3, 60)

	stats, err := store.GameStats("speedball")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 || stats.BestLevel != 3 || stats.AvgAccuracy != 50 {
		t.Errorf("Unexpected averages: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
