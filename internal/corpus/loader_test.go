package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReadsTxtFilesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha document")
	writeFile(t, dir, "b.txt", "beta document")
	writeFile(t, dir, "c.md", "markdown is skipped")

	docs, err := Load([]string{filepath.Join(dir, "*")})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "alpha document", docs[0].Text)
	assert.Equal(t, "beta document", docs[1].Text)
}

func TestLoadIDsAreStable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha")

	first, err := Load([]string{filepath.Join(dir, "a.txt")})
	require.NoError(t, err)
	second, err := Load([]string{filepath.Join(dir, "a.txt")})
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Len(t, first[0].ID, 16)
}

func TestLoadErrorsWhenNothingMatches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c.md", "not a txt")

	_, err := Load([]string{filepath.Join(dir, "*.md")})
	require.Error(t, err)
	_, err = Load(nil)
	require.Error(t, err)
}
