package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ExportSite writes a self-contained copy of the page to dir: index.html in
// static mode plus the embedded assets under dir/static. Existing files are
// overwritten.
func ExportSite(dir string, content *Content, ui UISettings, now time.Time) ([]string, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	page := BuildPage(content, ui, now)
	page.Static = true
	page.Form.Static = true

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "index", page); err != nil {
		return nil, fmt.Errorf("failed to render index: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	written := []string{"index.html"}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return nil, err
	}

	assets, err := staticFiles()
	if err != nil {
		return nil, err
	}
	err = fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, "static", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		written = append(written, filepath.ToSlash(filepath.Join("static", path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy assets: %w", err)
	}
	return written, nil
}
