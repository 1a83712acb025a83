package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_NormalizesWords(t *testing.T) {
	l, err := Read(strings.NewReader("cat\n  Dog \r\n\nQUIT\ncat\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Contains("CAT"))
	assert.True(t, l.Contains("cat"))
	assert.True(t, l.Contains("DOG"))
	assert.True(t, l.Contains("quit"))
	assert.False(t, l.Contains(""))
	assert.False(t, l.Contains("COW"))
}

func TestRead_InvalidUTF8(t *testing.T) {
	_, err := Read(strings.NewReader("cat\n\xff\xfe\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoad))
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bogwords.txt")
	require.NoError(t, os.WriteFile(path, []byte("tea\neat\nate\n"), 0644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Contains("EAT"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoad))
}

func TestNew(t *testing.T) {
	l := New("cat", " ", "Dog")
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains("dog"))
}

func TestLoad_BundledWordList(t *testing.T) {
	path := filepath.Join("..", "..", "data", "bogwords.txt")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("Skipping test - bundled word list not found")
	}

	l, err := Load(path)
	require.NoError(t, err)
	assert.Greater(t, l.Len(), 100)
	assert.True(t, l.Contains("CAT"))
}

func TestNew_EmptyAndDuplicates(t *testing.T) {
	empty := New()
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Contains(""))
	assert.False(t, empty.Contains("A"))

	l := New("tea", "TEA", " Tea ", "", "   ")
	assert.Equal(t, 1, l.Len())
	assert.True(t, l.Contains("tEa"))
}
