// Package discovery resolves lint targets to KRL source files.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions are the file extensions recognized as KRL sources.
var DefaultExtensions = []string{".src", ".dat", ".sub"}

// Options controls target resolution.
type Options struct {
	// Extensions filters files found in directory targets. Empty means
	// DefaultExtensions.
	Extensions []string

	// ExcludePatterns are doublestar globs; a file matching any pattern
	// by full path, basename, or path suffix is skipped.
	ExcludePatterns []string
}

// Discover expands targets into a deterministic, duplicate-free list of
// files. File targets are kept as-is; directory targets are walked
// recursively, keeping files with a recognized extension.
func Discover(targets []string, opts Options) ([]string, error) {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		if isExcluded(path, opts.ExcludePatterns) {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", target, err)
		}

		if !info.IsDir() {
			add(target)
			continue
		}

		err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if hasExtension(path, extensions) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", target, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if ext == want {
			return true
		}
	}
	return false
}

func isExcluded(path string, patterns []string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if match, _ := doublestar.Match(pattern, slashed); match {
			return true
		}
		if match, _ := doublestar.Match(pattern, base); match {
			return true
		}
		if match, _ := doublestar.Match("**/"+pattern, slashed); match {
			return true
		}
	}
	return false
}
