package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTextPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	text, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestReadTextStripsNullBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nulls.txt")
	require.NoError(t, os.WriteFile(path, []byte("he\x00ll\x00o"), 0o644))

	text, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestReadTextReplacesInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	// 0xE9 is 'é' in Latin-1 and invalid as a standalone UTF-8 byte.
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0o644))

	text, err := ReadText(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "caf"))
	assert.Contains(t, text, "�")
	assert.True(t, strings.ToValidUTF8(text, "") == text, "result must be valid UTF-8")
}

func TestReadTextMissingFile(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	assert.Equal(t, "", Decode(nil))
	assert.Equal(t, "", Decode([]byte{}))
}

func TestReadFailurePlaceholder(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	placeholder := ReadFailurePlaceholder(err)
	assert.True(t, strings.HasPrefix(placeholder, "Content unavailable: "))
}
