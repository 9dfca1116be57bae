package site

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Asset is a static file to be copied into the generated site.
type Asset struct {
	Path    string // Absolute path on disk.
	RelPath string // Slash-separated path relative to the static dir.
}

// CollectAssets walks dir and returns every regular file not matched by an
// exclude pattern, sorted by relative path. A missing dir yields no assets.
func CollectAssets(dir string, exclude []string) ([]Asset, error) {
	if dir == "" {
		return nil, nil
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving static dir: %w", err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var assets []Asset
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel != "." && matchesAny(rel, exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || matchesAny(rel, exclude) {
			return nil
		}
		assets = append(assets, Asset{Path: path, RelPath: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking static dir: %w", err)
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].RelPath < assets[j].RelPath })
	return assets, nil
}

// matchesAny checks if relPath matches any of the given glob patterns,
// either as a whole or by its base name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// isExcluded reports whether relPath or any of its parent directories
// matches an exclude pattern, mirroring what CollectAssets skips.
func isExcluded(relPath string, patterns []string) bool {
	parts := strings.Split(strings.Trim(path.Clean("/"+filepath.ToSlash(relPath)), "/"), "/")
	for i := range parts {
		if parts[i] == "" {
			continue
		}
		if matchesAny(strings.Join(parts[:i+1], "/"), patterns) {
			return true
		}
	}
	return false
}

// copyFile copies src to dst, creating dst's parent directories.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
