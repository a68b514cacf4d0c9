package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractTextPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "2 years experience with React, based in Pune"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	text, err := ExtractText(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != content {
		t.Fatalf("expected %q, got %q", content, text)
	}
}

func TestExtractTextUnknownExtensionFallsBackToPlain(t *testing.T) {
	text, err := ExtractTextFromBytes(".md", []byte("# Resume\nPython developer"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Python developer") {
		t.Fatalf("expected plain passthrough, got %q", text)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	if _, err := ExtractText(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestExtractTextCorruptPDF(t *testing.T) {
	if _, err := ExtractTextFromBytes(".pdf", []byte("not a pdf")); err == nil {
		t.Fatalf("expected error for corrupt pdf")
	}
}

func TestExtractTextCorruptDocx(t *testing.T) {
	if _, err := ExtractTextFromBytes(".docx", []byte("not a docx")); err == nil {
		t.Fatalf("expected error for corrupt docx")
	}
}
