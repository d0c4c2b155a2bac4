// Package upload holds the binary blobs sent to the hiring service: résumés
// and job description documents.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds how many files LoadAll reads at once.
const maxConcurrentReads = 8

// File is a named blob ready to be attached to a multipart request.
type File struct {
	Name        string
	Data        []byte
	ContentType string
}

// New wraps data read elsewhere, detecting its content type.
func New(name string, data []byte) File {
	return File{
		Name:        name,
		Data:        data,
		ContentType: mimetype.Detect(data).String(),
	}
}

// FromText builds a plain text file, used for job descriptions typed inline.
func FromText(name, text string) File {
	return File{
		Name:        name,
		Data:        []byte(text),
		ContentType: "text/plain; charset=utf-8",
	}
}

// IsZero reports whether no file was selected.
func (f File) IsZero() bool {
	return strings.TrimSpace(f.Name) == "" && len(f.Data) == 0
}

// Text returns the contents as a string.
func (f File) Text() string {
	return string(f.Data)
}

// Load reads a single file from disk.
func Load(path string) (File, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return File{}, fmt.Errorf("file path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading %q: %w", path, err)
	}

	if len(data) == 0 {
		return File{}, fmt.Errorf("file %q is empty", path)
	}

	return New(filepath.Base(path), data), nil
}

// LoadAll reads the given paths concurrently. The result keeps the order of
// paths, which is the submission order used for tie-breaking in rankings.
func LoadAll(ctx context.Context, paths []string) ([]File, error) {
	files := make([]File, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			file, err := Load(path)
			if err != nil {
				return err
			}
			files[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}
