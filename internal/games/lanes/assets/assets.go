// Package assets provides the name to sprite table handed to the lanes engine
// as its opaque asset handles.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lanefall/internal/core"
	"github.com/vovakirdan/lanefall/internal/games/lanes/engine"
)

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

// Sprite is a single-cell glyph with a colour.
type Sprite struct {
	Glyph rune
	Color core.Color
}

// Table maps asset names to sprites.
type Table map[string]Sprite

type spriteEntry struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

type spriteFile struct {
	Sprites map[string]spriteEntry `yaml:"sprites"`
}

// Parse decodes a sprite table.
func Parse(data []byte) (Table, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	t := make(Table, len(f.Sprites))
	for name, e := range f.Sprites {
		if utf8.RuneCountInString(e.Glyph) != 1 {
			return nil, fmt.Errorf("sprite %q: glyph %q must be a single character", name, e.Glyph)
		}
		r, _ := utf8.DecodeRuneInString(e.Glyph)

		c := core.ColorDefault
		if e.Color != "" {
			var ok bool
			if c, ok = core.ParseColor(e.Color); !ok {
				return nil, fmt.Errorf("sprite %q: unknown color %q", name, e.Color)
			}
		}
		t[name] = Sprite{Glyph: r, Color: c}
	}
	return t, nil
}

// Default returns the embedded sprite table.
func Default() Table {
	t, err := Parse(defaultSpritesYAML)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded sprites are invalid: %v", err))
	}
	return t
}

// Load reads a sprite table from path, or returns the embedded table when
// path is empty. Sprites missing from the file fall back to the defaults.
func Load(path string) (Table, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprites %s: %w", path, err)
	}
	custom, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sprites %s: %w", path, err)
	}
	for name, s := range custom {
		t[name] = s
	}
	return t, nil
}

// Engine converts the table to the engine's handle map. Handles are Sprite values.
func (t Table) Engine() engine.Assets {
	a := make(engine.Assets, len(t))
	for name, s := range t {
		a[name] = s
	}
	return a
}

// Names returns the asset names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
