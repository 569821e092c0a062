package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishCreatesDirectoryAndArtifacts(t *testing.T) {
	base := filepath.Join(t.TempDir(), "output", "nested", "test")
	pdf, err := NewPDFRenderer(DefaultPDFConfig())
	require.NoError(t, err)

	paths, err := Publish(testDocument(t, ""), base, pdf, NewTeXRenderer())
	require.NoError(t, err)
	assert.Equal(t, []string{base + ".pdf", base + ".tex"}, paths)

	data, err := os.ReadFile(base + ".pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))

	data, err = os.ReadFile(base + ".tex")
	require.NoError(t, err)
	assert.Contains(t, string(data), `\begin{document}`)
}

func TestPublishExistingDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "sheet")

	_, err := Publish(testDocument(t, ""), base, NewTeXRenderer())
	require.NoError(t, err)
	_, err = Publish(testDocument(t, ""), base, NewTeXRenderer())
	require.NoError(t, err, "publishing twice into the same directory must succeed")
}

func TestPublishDirectoryError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Publish(testDocument(t, ""), filepath.Join(blocker, "sub", "test"), NewTeXRenderer())
	assert.Error(t, err)
}
