// Package cliutil holds the small helpers the nsislex subcommands share:
// glob expansion over an afero filesystem and keyword-table selection.
package cliutil

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/walteh/nsislex/pkg/keywords"
	"gitlab.com/tozd/go/errors"
)

// ExpandGlobs resolves each argument against the filesystem: a path that
// exists as-is is taken literally, anything else is treated as a
// doublestar pattern. Duplicate matches are dropped, order is preserved.
func ExpandGlobs(fsys afero.Fs, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, p := range patterns {
		if ok, _ := afero.Exists(fsys, p); ok {
			add(p)
			continue
		}
		matches, err := doublestar.Glob(afero.NewIOFS(fsys), p)
		if err != nil {
			return nil, errors.Errorf("bad pattern %q: %w", p, err)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("no files match %q", p)
		}
		for _, m := range matches {
			add(m)
		}
	}

	return files, nil
}

// Table returns the keyword table the subcommands scan with: the built-in
// NSIS set, or the contents of an HCL keyword file when path is set.
func Table(fsys afero.Fs, path string) (*keywords.Table, error) {
	if path == "" {
		return keywords.Default(), nil
	}
	return keywords.Load(fsys, path)
}
