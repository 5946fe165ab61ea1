package feedback

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_AppendsJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.jsonl")
	logger, err := NewLogger(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, logger.Record(ctx, Entry{
		Query:  "¿qué becas hay?",
		Answer: "Hay becas disponibles.",
		Rating: RatingPositive,
	}))
	require.NoError(t, logger.Record(ctx, Entry{
		Query:  "plazos",
		Rating: RatingNegative,
		Comment: "respuesta incompleta",
	}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}

	require.Len(t, entries, 2)
	assert.Equal(t, "¿qué becas hay?", entries[0].Query)
	assert.Equal(t, RatingPositive, entries[0].Rating)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.Equal(t, RatingNegative, entries[1].Rating)
}

func TestRecord_KeepsExplicitTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.jsonl")
	logger, err := NewLogger(path)
	require.NoError(t, err)

	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, logger.Record(context.Background(), Entry{Query: "q", Timestamp: ts}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var e Entry
	require.NoError(t, json.Unmarshal(data, &e))
	assert.True(t, e.Timestamp.Equal(ts))
}

func TestNewLogger_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "feedback.jsonl")
	logger, err := NewLogger(path)
	require.NoError(t, err)

	require.NoError(t, logger.Record(context.Background(), Entry{Query: "q"}))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
