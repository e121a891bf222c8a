package ingest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("contract.txt"))
	assert.True(t, IsSupported("contract.PDF"))
	assert.True(t, IsSupported("contract.docx"))
	assert.True(t, IsSupported("contract.doc"))
	assert.False(t, IsSupported("contract.md"))
	assert.False(t, IsSupported("contract"))
}

func TestReadDocument_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text content"), 0o644))

	content, err := ReadDocument(path)

	require.NoError(t, err)
	assert.Equal(t, "plain text content", content)
}

func TestReadDocument_UnsupportedType(t *testing.T) {
	_, err := ReadDocument("image.png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func writeDocx(t *testing.T, path string, documentXML string) {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestReadDocument_Docx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	content, err := ReadDocument(path)

	require.NoError(t, err)
	assert.Contains(t, content, "First paragraph.")
	assert.Contains(t, content, "Second paragraph.")
	assert.Contains(t, content, "First paragraph.\n")
}

func TestReadDocument_DocxWithoutDocumentPart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	_, err = ReadDocument(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document part")
}
