package session

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	s.coins = 150
	s.lives = 2
	setHand(t, s, "AS", "2C", "9H", "KD", "4C", "JC", "10S", "QD", "6H")

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.Lives)
	assert.Equal(t, 150, snap.Coins)
	assert.Equal(t, []string{"AS", "2C", "9H", "KD", "4C", "JC", "10S", "QD", "6H"}, snap.Hand)

	restored := New(Options{Rand: rand.NewPCG(1, 1)})
	require.NoError(t, restored.Restore(snap))
	assert.Equal(t, 2, restored.Lives())
	assert.Equal(t, 150, restored.Coins())
	assert.Equal(t, s.Hand(), restored.Hand())
	assert.Equal(t, PhaseIdle, restored.Phase())
}

func TestRestoreClampsLives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lives int
		want  int
	}{
		{"above cap", 99, 3},
		{"negative", -5, 0},
		{"in range", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, _ := newTestSession(t)
			err := s.Restore(Snapshot{Lives: tt.lives, Coins: 10, Hand: []string{"AS"}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Lives())
		})
	}
}

func TestRestoreFloorsCoins(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	require.NoError(t, s.Restore(Snapshot{Lives: 3, Coins: -10, Hand: []string{"AS"}}))
	assert.Equal(t, 0, s.Coins())
}

func TestRestoreMalformedHandLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	s.coins = 77
	hand := s.Hand()

	err := s.Restore(Snapshot{Lives: 1, Coins: 5, Hand: []string{"AS", "XX"}})
	require.Error(t, err)
	assert.Equal(t, 77, s.Coins())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, hand, s.Hand())
}

func TestRestoreClearsInteractionState(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	s.Draw()
	require.Equal(t, PhaseCardPending, s.Phase())

	require.NoError(t, s.Restore(Snapshot{Lives: 2, Coins: 0, Hand: []string{"AS", "2C"}}))
	assert.Equal(t, PhaseIdle, s.Phase())
	_, ok := s.Pending()
	assert.False(t, ok)
}
