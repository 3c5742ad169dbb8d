package game

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHighScoreService(t *testing.T) *HighScoreService {
	t.Helper()
	service, err := NewHighScoreService(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = service.Close() })
	return service
}

func TestHighScoreRoundTrip(t *testing.T) {
	service := newTestHighScoreService(t)

	require.NoError(t, service.SaveScore("ada", 12, 30, 1, "smart", true))
	require.NoError(t, service.SaveScore("bob", 5, 44, 0, "manual", false))
	require.NoError(t, service.SaveScore("cleo", 12, 25, 2, "random", true))

	count, err := service.GetTotalScoreCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	scores, err := service.GetHighScores(10, 0)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Won runs first, then gems, then fewest moves.
	assert.Equal(t, "cleo", scores[0].Player)
	assert.Equal(t, "ada", scores[1].Player)
	assert.Equal(t, "bob", scores[2].Player)
	assert.True(t, scores[0].Won)
	assert.Equal(t, "random", scores[0].Strategy)
}

func TestHighScorePagination(t *testing.T) {
	service := newTestHighScoreService(t)
	require.NoError(t, service.SaveScore("ada", 3, 10, 1, "manual", false))
	require.NoError(t, service.SaveScore("bob", 2, 10, 1, "manual", false))

	scores, err := service.GetHighScores(1, 1)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "bob", scores[0].Player)
}
