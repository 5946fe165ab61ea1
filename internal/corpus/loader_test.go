package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadText_SplitsOnBlankLines(t *testing.T) {
	path := writeFile(t, "corpus.txt", "first chunk\nstill first\n\nsecond chunk\n\n\nthird chunk\n")

	c, err := LoadText(path)
	require.NoError(t, err)

	require.Equal(t, 3, c.Len())
	assert.Equal(t, "first chunk\nstill first", c.Text(0))
	assert.Equal(t, "second chunk", c.Text(1))
	assert.Equal(t, "third chunk", c.Text(2))
}

func TestLoadText_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "\n\n  \n")

	_, err := LoadText(path)
	assert.Error(t, err)
}

func TestLoadJSONL(t *testing.T) {
	path := writeFile(t, "corpus.jsonl",
		`{"text": "alpha"}`+"\n"+
			"\n"+
			`{"text": "beta"}`+"\n")

	c, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "alpha", c.Text(0))
	assert.Equal(t, "beta", c.Text(1))
}

func TestLoadJSONL_RejectsEmptyText(t *testing.T) {
	path := writeFile(t, "corpus.jsonl", `{"text": "  "}`+"\n")

	_, err := LoadJSONL(path)
	assert.Error(t, err)
}

func TestLoadJSONL_RejectsMalformedLine(t *testing.T) {
	path := writeFile(t, "corpus.jsonl", "{not json}\n")

	_, err := LoadJSONL(path)
	assert.Error(t, err)
}

func TestCorpus_IndicesAreStable(t *testing.T) {
	c := New([]string{"a", "b", "c"})

	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, i, c.Chunk(i).Index)
	}

	// Texts returns a copy; mutating it does not affect the corpus.
	texts := c.Texts()
	texts[0] = "mutated"
	assert.Equal(t, "a", c.Text(0))
}
