package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MatchesGlobsAndSplitsParagraphs(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmpDir, "docs", "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(rel, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(tmpDir, rel), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("docs/a.txt", "first paragraph\n\nsecond paragraph\n")
	write("docs/nested/b.txt", "nested text")
	write("docs/skipme.md", "not a txt file")

	loader := NewLoader([]string{"docs/**/*.txt"})
	texts, err := loader.Load(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"first paragraph", "second paragraph", "nested text"}
	if len(texts) != len(want) {
		t.Fatalf("expected %d texts, got %v", len(want), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("text %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestLoad_NoMatches(t *testing.T) {
	loader := NewLoader([]string{"**/*.txt"})
	texts, err := loader.Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(texts) != 0 {
		t.Errorf("expected no texts, got %v", texts)
	}
}
