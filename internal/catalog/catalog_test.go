package catalog

import "testing"

func TestGamesAreOrderedByRecency(t *testing.T) {
	t.Parallel()

	games := Games()
	if len(games) != 5 {
		t.Fatalf("expected 5 games, got %d", len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i].LastPlayed < games[i-1].LastPlayed {
			t.Fatalf("games not ordered by last played at %d", i)
		}
	}
}
