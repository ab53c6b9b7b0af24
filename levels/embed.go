package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Read returns the raw bytes of a level file, preferring levels/<name> on
// disk so edits show up without a rebuild.
func Read(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

// Load reads and parses a level by name ("tactics", "tactics.yaml" or
// "levels/tactics.yaml").
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := Read(clean)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", clean, err)
	}
	return Parse(clean, data)
}

// LoadFile parses a level from an arbitrary path. Its script is looked up in
// a scripts/ directory next to the file before falling back to LoadScript.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	return parse(filepath.Base(path), data, func(script string) ([]byte, error) {
		if src, err := os.ReadFile(filepath.Join(dir, "scripts", filepath.FromSlash(script))); err == nil {
			return src, nil
		}
		return LoadScript(script)
	})
}

// Open loads name from disk when it names an existing file, otherwise by
// level name.
func Open(name string) (*Level, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return LoadFile(name)
	}
	return Load(name)
}

// LoadScript returns a cost script, preferring levels/scripts/<name> on disk.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// Names lists the embedded levels without their extension.
func Names() []string {
	matches, err := fs.Glob(LevelsFS, "*.yaml")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, ".yaml"))
	}
	sort.Strings(names)
	return names
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "levels/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
