package storage

import (
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("catcher", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("catcher_rush", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("catcher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "catcher" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	rush, err := store.TopScores("catcher_rush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(rush) != 1 {
		t.Errorf("Expected 1 rush score, got %d", len(rush))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	for i := 0; i < 10; i++ {
		store.SaveScore("test", i)
	}
	scores, err = store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreTiesKeepRunOrder(t *testing.T) {
	store := openStore(t)

	first, _ := store.SaveScore("catcher", 40)
	second, _ := store.SaveScore("catcher", 40)

	scores, err := store.TopScores("catcher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].ID != first || scores[1].ID != second {
		t.Errorf("tie order = %d,%d, want %d,%d", scores[0].ID, scores[1].ID, first, second)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	// No scores yet
	high, err := store.HighScore("catcher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("catcher", 100)
	store.SaveScore("catcher", 300)
	store.SaveScore("catcher", 200)

	high, err = store.HighScore("catcher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("catcher", -10); err == nil {
		t.Error("expected error for negative score")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openStore(t)

	store.SaveScore("catcher", 100)
	store.SaveScore("catcher", 200)
	store.SaveScore("catcher_rush", 300)

	// Clear only catcher scores
	if err := store.ClearScores("catcher"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("catcher", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 catcher scores after clear, got %d", len(scores))
	}

	rush, _ := store.TopScores("catcher_rush", 10)
	if len(rush) != 1 {
		t.Errorf("Rush scores should not be affected by clearing catcher")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openStore(t)

	empty, err := store.GetGameStats("catcher")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, score := range []int{10, 20, 60} {
		store.SaveScore("catcher", score)
	}
	stats, err := store.GetGameStats("catcher")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 60 || stats.TotalScore != 90 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 30 {
		t.Errorf("AvgScore = %g, want 30", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	a.SaveScore("catcher", 100)

	high, err := b.HighScore("catcher")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("second store sees %d, want an empty scoreboard", high)
	}
}

func TestStoreSurvivesManyQueries(t *testing.T) {
	store := openStore(t)

	// The single pooled connection must stay the same database throughout.
	for i := 0; i < 50; i++ {
		if _, err := store.SaveScore("catcher", i); err != nil {
			t.Fatalf("SaveScore() #%d failed: %v", i, err)
		}
		if _, err := store.TopScores("catcher", 5); err != nil {
			t.Fatalf("TopScores() #%d failed: %v", i, err)
		}
	}
	stats, err := store.GetGameStats("catcher")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 50 {
		t.Errorf("GamesCount = %d, want 50", stats.GamesCount)
	}
}
