package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Output describes what Write put on disk.
type Output struct {
	OutputDir string
	Files     []string
}

// Write creates dir (and any missing parents) and writes every artifact into
// it, overwriting existing files. All writes are started together and each one
// is attempted even if another fails; the first error observed is returned, so
// the directory may be partially written when Write reports failure.
func Write(dir string, result *Result) (*Output, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating scaffold directory %s: %w", dir, err)
	}

	out := &Output{
		OutputDir: dir,
		Files:     make([]string, len(result.Artifacts)),
	}

	var g errgroup.Group
	for i, a := range result.Artifacts {
		path := filepath.Join(dir, a.File)
		out.Files[i] = path
		g.Go(func() error {
			if err := os.WriteFile(path, a.Content, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
