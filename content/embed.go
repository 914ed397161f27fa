// Package content loads the game's data-driven definitions and scripts into
// registries: bullet archetypes, characters, enemies, bosses, paths, tengo
// behaviors, and the Go stage scripts. Everything ships embedded; a content
// directory on disk overrides the embedded copy file by file so definitions
// can be iterated on without rebuilding.
package content

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed data/*.yaml
var dataFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// dir is the optional on-disk override root, set with SetDir.
var dir string

// SetDir points content loading at an on-disk directory laid out like the
// embedded tree (data/*.yaml, scripts/*.tengo).
func SetDir(path string) {
	dir = path
}

// Dir returns the on-disk override root, if any.
func Dir() string {
	return dir
}

func readData(name string) ([]byte, error) {
	clean := "data/" + strings.TrimPrefix(filepath.ToSlash(name), "data/")
	if dir != "" {
		if b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
			return b, nil
		}
	}
	return dataFS.ReadFile(clean)
}

func readScript(name string) ([]byte, error) {
	clean := "scripts/" + strings.TrimPrefix(filepath.ToSlash(name), "scripts/")
	if dir != "" {
		if b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
			return b, nil
		}
	}
	return scriptsFS.ReadFile(clean)
}
