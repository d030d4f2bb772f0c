package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Loader collects corpus texts from files matching glob patterns.
// Files are split on blank lines, one paragraph per corpus text.
type Loader struct {
	includes []string
}

// NewLoader creates a loader for the given glob patterns.
// Patterns support doublestar globs like "docs/**/*.txt".
func NewLoader(includes []string) *Loader {
	if len(includes) == 0 {
		includes = []string{"**/*.txt"}
	}
	return &Loader{includes: includes}
}

// Load walks root and returns the texts of every matching file, in
// path order so repeated loads produce the same corpus sequence.
func (l *Loader) Load(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var texts []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if !l.matches(filepath.ToSlash(relPath)) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		texts = append(texts, splitParagraphs(string(data))...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return texts, nil
}

func (l *Loader) matches(relPath string) bool {
	for _, pattern := range l.includes {
		matched, err := doublestar.Match(pattern, relPath)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func splitParagraphs(content string) []string {
	var texts []string
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		texts = append(texts, para)
	}
	return texts
}
