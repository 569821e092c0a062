package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Publish writes doc to base+ext for every renderer, after creating the
// parent directory of base if it does not exist. Nothing is cleaned up if a
// renderer fails midway.
func Publish(doc *Document, base string, renderers ...Renderer) ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(base), 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, 0, len(renderers))
	for _, r := range renderers {
		path := base + r.Extension()
		if err := renderFile(r, doc, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func renderFile(r Renderer, doc *Document, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := r.Render(bw, doc); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
