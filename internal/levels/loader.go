// Package levels provides the hand-authored campaign and level file loading.
// This package depends on maze but maze does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/cornmaze/internal/levels/formats"
	"github.com/vovakirdan/cornmaze/internal/maze"
)

// ErrLevelNotFound is returned when no loaded level has the requested name.
var ErrLevelNotFound = errors.New("level not found")

//go:embed data/*.yaml
var campaignFS embed.FS

// Level is a loaded level together with the file it came from.
type Level struct {
	*maze.Level
	FilePath string
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a new level loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Campaign returns the built-in levels in play order.
func Campaign() ([]Level, error) {
	return CampaignLoader().LoadAll()
}

// CampaignLoader returns a loader over the embedded campaign files.
func CampaignLoader() *Loader {
	sub, err := fs.Sub(campaignFS, "data")
	if err != nil {
		// Only fails for an invalid path literal.
		panic(err)
	}
	return &Loader{Root: "data", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Levels are sorted by file path.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		data, err := fs.ReadFile(l.fsys, p)
		if err != nil {
			return nil
		}
		lvl, err := parseByExtension(data, ext)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, Level{Level: lvl, FilePath: filepath.Join(l.Root, filepath.FromSlash(p))})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].FilePath < levels[j].FilePath
	})

	return levels, nil
}

// LoadFile loads a single level file from disk.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	lvl, err := parseByExtension(data, strings.ToLower(filepath.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Level{Level: lvl, FilePath: p}, nil
}

// LoadByName loads a level by its display name, ignoring case.
func (l *Loader) LoadByName(name string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if strings.EqualFold(lvl.Name(), name) {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
}

// ListNames returns all level names in load order.
func (l *Loader) ListNames() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name()
	}
	return names, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (*maze.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
