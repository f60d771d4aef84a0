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

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("arena", "ann", 12)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("arena")
	if err != nil || best == nil || best.Score != 12 {
		t.Errorf("BestScore() after reopen = %+v, %v; expected 12", best, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		game   string
		player string
		score  int
	}{
		{"arena", "ann", 100},
		{"arena", "bob", 50},
		{"arena", "cid", 200},
		{"other", "ann", 500},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.game, s.player, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("arena", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []struct {
		player string
		score  int
	}{{"cid", 200}, {"ann", 100}, {"bob", 50}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Player != w.player {
			t.Errorf("scores[%d] = %s/%d, expected %s/%d", i, scores[i].Player, scores[i].Score, w.player, w.score)
		}
		if scores[i].GameID != "arena" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d].CreatedAt not parsed", i)
		}
	}

	other, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "p", (i+1)*100)
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{10, 5},
		{0, 5}, // Non-positive limit falls back to 10
	}

	for _, tc := range tests {
		scores, err := store.TopScores("test", tc.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tc.limit, err)
		}
		if len(scores) != tc.want {
			t.Errorf("TopScores(%d) returned %d scores, expected %d", tc.limit, len(scores), tc.want)
		}
	}

	scores, _ := store.TopScores("test", 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreTiesKeepEarlierFirst(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("arena", "first", 7)
	store.SaveScore("arena", "second", 7)

	best, err := store.BestScore("arena")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best == nil || best.Player != "first" {
		t.Errorf("BestScore() = %+v, expected the earlier entry", best)
	}
}

func TestStoreBestScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("arena")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != nil {
		t.Errorf("BestScore() = %+v, expected nil", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("arena", "a", 100)
	store.SaveScore("arena", "b", 200)
	store.SaveScore("other", "c", 300)

	if err := store.ClearScores("arena"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	arenaScores, _ := store.TopScores("arena", 10)
	if len(arenaScores) != 0 {
		t.Errorf("Expected 0 arena scores after clear, got %d", len(arenaScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other scores should not be affected by clearing arena")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", "p", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("arena")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for empty game = %+v", empty)
	}

	store.SaveScore("arena", "a", 10)
	store.SaveScore("arena", "b", 30)

	stats, err := store.GetGameStats("arena")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
