package document

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"collapses spaces", "The  tenant\t shall\npay.", "The tenant shall pay."},
		{"keeps paragraphs", "First clause.\n\n\n\nSecond clause.", "First clause.\n\nSecond clause."},
		{"drops footers", "Rent is due. Page 2 of 9\n\nLate fees apply.", "Rent is due.\n\nLate fees apply."},
		{"drops page numbers", "Rent is due.\n\n12\n\nLate fees apply.", "Rent is due.\n\nLate fees apply."},
		{"drops control characters", "Rent\x00 is\x07 due.\r\n", "Rent is due."},
		{"blank lines with spaces", "One.\n   \nTwo.", "One.\n\nTwo."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preprocess(tt.in))
		})
	}
}

func TestSplitClauses(t *testing.T) {
	got := SplitClauses("The tenant pays rent; the owner fixes the roof. Both sign. e.g. this stays")

	assert.Equal(t, []string{"The tenant pays rent", "the owner fixes the roof", "Both sign. e.g. this stays"}, got)
}

func TestExtractMetadata(t *testing.T) {
	md := ExtractMetadata("Rent is due monthly. Late fees apply; notice is required.")

	assert.Equal(t, 57, md.Length)
	assert.Equal(t, 2, md.NumSentences)
	assert.Equal(t, 3, md.NumClauses)
}

func TestExtractMetadata_CountsRunes(t *testing.T) {
	assert.Equal(t, 4, ExtractMetadata("₹500").Length)
}

func TestExtract_PlainText(t *testing.T) {
	text, err := Extract("Lease.TXT", []byte("The tenant pays rent."))

	require.NoError(t, err)
	assert.Equal(t, "The tenant pays rent.", text)
}

func TestExtract_DOCX(t *testing.T) {
	data := buildDOCX(t, `<w:p><w:r><w:t>The tenant</w:t></w:r><w:r><w:t xml:space="preserve"> pays rent.</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Notice</w:t><w:tab/><w:t>is required.</w:t></w:r></w:p>`)

	text, err := Extract("lease.docx", data)

	require.NoError(t, err)
	assert.Equal(t, "The tenant pays rent.\n\nNotice\tis required.", text)
}

func TestExtract_DOCXWithoutDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Extract("lease.docx", buf.Bytes())

	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtract_InvalidPDF(t *testing.T) {
	_, err := Extract("lease.pdf", []byte("definitely not a pdf"))

	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtract_Unsupported(t *testing.T) {
	_, err := Extract("lease.doc", []byte("x"))

	assert.ErrorIs(t, err, ErrUnsupportedFileType)
	assert.False(t, IsSupported("lease.doc"))
	assert.True(t, IsSupported("LEASE.PDF"))
}

func TestIsPlainText(t *testing.T) {
	assert.True(t, IsPlainText("plain text ₹"))
	assert.False(t, IsPlainText("nul\x00byte"))
	assert.False(t, IsPlainText(string([]byte{0xff, 0xfe})))
}

func TestChecksum(t *testing.T) {
	a := Checksum([]byte("lease"))

	assert.Len(t, a, 64)
	assert.Equal(t, a, Checksum([]byte("lease")))
	assert.NotEqual(t, a, Checksum([]byte("lease ")))
}
