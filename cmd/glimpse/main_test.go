package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance_NeverNegative(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	var history []int
	for i := 0; i < 1000; i++ {
		history = advance(rng, history)
		assert.GreaterOrEqual(t, history[len(history)-1], 0)
	}
}

func TestAdvance_CapsHistory(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))
	var history []int
	for i := 0; i < historyCap*2; i++ {
		history = advance(rng, history)
	}
	assert.Len(t, history, historyCap)
}

func TestTitle_FromMetricKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Wal Io", title("wal_io"))
	assert.Equal(t, "Blocking Sessions", title("blocking_sessions"))
	assert.Equal(t, "Vacuum Progress", title("vacuum_progress"))
}
