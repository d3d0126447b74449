package parser

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextPlainText(t *testing.T) {
	text, err := ExtractText([]byte("Jane Doe\nSenior Engineer"), "text/plain", "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Engineer", text)
}

func TestExtractTextPlainTextWithCharset(t *testing.T) {
	text, err := ExtractText([]byte("hello"), "text/plain; charset=utf-8", "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractTextDOCX(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Skills: Go, SQL</w:t></w:r></w:p>
  </w:body>
</w:document>`
	data := buildDOCX(t, docXML)

	text, err := ExtractText(data, MimeDOCX, "resume.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Skills: Go, SQL")
	assert.NotContains(t, text, "<w:")
}

func TestExtractTextDOCXUploadedAsZip(t *testing.T) {
	data := buildDOCX(t, `<w:document xmlns:w="x"><w:body><w:p><w:r><w:t>content</w:t></w:r></w:p></w:body></w:document>`)

	text, err := ExtractText(data, "application/zip", "resume.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "content")
}

func TestExtractTextDOCXMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText(buf.Bytes(), MimeDOCX, "resume.docx")
	assert.ErrorContains(t, err, "document.xml")
}

func TestExtractTextUnsupportedType(t *testing.T) {
	_, err := ExtractText([]byte("GIF89a"), "image/gif", "resume.gif")
	require.Error(t, err)

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "image/gif", unsupported.MimeType)
}

func TestExtractTextEmptyFile(t *testing.T) {
	_, err := ExtractText(nil, "text/plain", "resume.txt")
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := ExtractText([]byte("not a pdf at all"), MimePDF, "resume.pdf")
	assert.Error(t, err)
}

func TestSupportedType(t *testing.T) {
	assert.True(t, SupportedType(MimePDF))
	assert.True(t, SupportedType(MimeDOCX))
	assert.True(t, SupportedType("text/plain; charset=utf-8"))
	assert.False(t, SupportedType("image/png"))
	assert.False(t, SupportedType("application/json"))
}
