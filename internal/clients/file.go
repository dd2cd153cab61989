package clients

import (
	"context"
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/ethanolivertroy/debcrates/internal/log"
)

// FileSource reads previously captured tool output from a file
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a FileSource; a leading "~" in path is expanded
func NewFileSource(fs afero.Fs, path string) (*FileSource, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", path, err)
	}
	return &FileSource{fs: fs, path: expanded}, nil
}

// Fetch returns the file contents
func (f *FileSource) Fetch(_ context.Context) (string, error) {
	log.Debugf("reading %s", f.path)

	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return decodeLossy(data), nil
}
