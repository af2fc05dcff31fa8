package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/bnema/shade/internal/domain/entity"
)

//go:embed builtin.yaml
var builtinCatalog []byte

// Parse decodes one catalog file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, err
	}
	return &f, nil
}

// Builtin returns the catalog shipped with the binary.
func Builtin() (*File, error) {
	f, err := Parse(builtinCatalog)
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	return f, nil
}

// Loader reads catalog files from disk.
type Loader struct {
	log zerolog.Logger
	// WithBuiltin puts the builtin catalog in front of the loaded files.
	WithBuiltin bool
}

// NewLoader creates a loader that includes the builtin catalog.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{
		log:         logger.With().Str("component", "catalog").Logger(),
		WithBuiltin: true,
	}
}

// Load reads every catalog file under paths, concurrently, and resolves
// them in path order. Directories contribute their *.yaml and *.yml files
// sorted by name.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*entity.WidgetClass, error) {
	files, err := expandPaths(paths)
	if err != nil {
		return nil, err
	}

	parsed := make([]*File, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}
			f, err := Parse(data)
			if err != nil {
				return fmt.Errorf("parse catalog %s: %w", path, err)
			}
			if f.Name == "" {
				f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			parsed[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if l.WithBuiltin {
		builtin, err := Builtin()
		if err != nil {
			return nil, err
		}
		parsed = append([]*File{builtin}, parsed...)
	}

	classes, err := Resolve(parsed...)
	if err != nil {
		return nil, err
	}
	l.log.Debug().
		Int("files", len(parsed)).
		Int("classes", len(classes)).
		Msg("catalog loaded")
	return classes, nil
}

func expandPaths(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("catalog path: %w", err)
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("catalog dir: %w", err)
		}
		var names []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			switch filepath.Ext(e.Name()) {
			case ".yaml", ".yml":
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			out = append(out, filepath.Join(path, name))
		}
	}
	return out, nil
}
