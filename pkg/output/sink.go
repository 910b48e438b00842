// Package output encodes rendered images and persists them to local files or
// S3-compatible object storage.
package output

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Sink persists an encoded image under a name. The format is chosen from the
// name's extension.
type Sink interface {
	Save(ctx context.Context, name string, img image.Image) error
}

// FileSink writes images into a local directory
type FileSink struct {
	Dir string
}

// NewFileSink creates a sink writing into dir
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Path returns the file path a name is saved to
func (s *FileSink) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Save creates the directory if needed and writes the image
func (s *FileSink) Save(ctx context.Context, name string, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.Dir, err)
	}
	path := s.Path(name)
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// MultiSink saves to every sink in order and stops at the first error
type MultiSink []Sink

// Save implements Sink
func (m MultiSink) Save(ctx context.Context, name string, img image.Image) error {
	for _, sink := range m {
		if err := sink.Save(ctx, name, img); err != nil {
			return err
		}
	}
	return nil
}
