package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRecallEmpty(t *testing.T) {
	var h History

	_, err := h.Recall()
	require.ErrorIs(t, err, ErrNoHistory)
}

func TestHistoryRecordRecall(t *testing.T) {
	var h History
	h.Record("echo hello")

	// Recall never churns the store: repeated recalls return the same line.
	for i := 0; i < 2; i++ {
		line, err := h.Recall()
		require.NoError(t, err)
		assert.Equal(t, "echo hello", line)
	}

	h.Record("pwd")
	line, err := h.Recall()
	require.NoError(t, err)
	assert.Equal(t, "pwd", line)
}

func TestHistoryClear(t *testing.T) {
	var h History
	h.Record("ls")
	h.Clear()

	_, err := h.Recall()
	require.ErrorIs(t, err, ErrNoHistory)
}
