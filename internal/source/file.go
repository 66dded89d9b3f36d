package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/persona/internal/model"
)

// FileSource loads content sets from JSON files shaped like
// {"posts": [{"text": ..., "source_locator": ...}], "comments": [...]}.
// The username selects <dir>/<username>.json.
type FileSource struct {
	dir string
}

// NewFileSource creates a source reading from dir
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// FetchUser reads the file for username
func (s *FileSource) FetchUser(ctx context.Context, username string) (model.ContentSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadContentSet(filepath.Join(s.dir, ExtractUsername(username)+".json"))
}

// LoadContentSet reads one content set file. Missing well-known sections are
// added as empty sequences.
func LoadContentSet(path string) (model.ContentSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	var set model.ContentSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}
	if set == nil {
		set = model.NewContentSet()
	}
	for _, section := range []string{model.SectionPosts, model.SectionComments} {
		if set[section] == nil {
			set[section] = []model.ContentItem{}
		}
	}
	return set, nil
}
