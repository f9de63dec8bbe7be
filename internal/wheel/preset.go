package wheel

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPresetID names the built-in preset used when no catalog is loaded.
const DefaultPresetID = "multiplicadores"

// DefaultPalette is the slice color cycle used when a preset names none.
var DefaultPalette = []string{
	"#8b5cf6", "#06b6d4", "#f97316", "#ef4444",
	"#10b981", "#f43f5e", "#60a5fa", "#f59e0b",
}

// Preset is a named default option set.
type Preset struct {
	Title   string   `yaml:"title" validate:"required"`
	Options []Option `yaml:"options" validate:"required,min=1,dive"`
	Colors  []string `yaml:"colors" validate:"omitempty,dive,hexcolor"`
}

// Palette returns the preset colors, or DefaultPalette when none are set.
func (p Preset) Palette() []string {
	if len(p.Colors) == 0 {
		return DefaultPalette
	}
	return p.Colors
}

// Catalog is the set of presets offered to users.
type Catalog struct {
	Default string            `yaml:"default" validate:"required"`
	Presets map[string]Preset `yaml:"presets" validate:"required,min=1,dive"`
}

// BuiltinCatalog returns the catalog used when no presets file exists.
func BuiltinCatalog() *Catalog {
	return &Catalog{
		Default: DefaultPresetID,
		Presets: map[string]Preset{
			DefaultPresetID: {
				Title: "Multiplicadores",
				Options: []Option{
					{Label: "0.5x", Weight: 3},
					{Label: "1x", Weight: 2},
					{Label: "2x", Weight: 3},
					{Label: "4x", Weight: 1},
				},
			},
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadCatalog reads and validates a YAML presets file.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return ParseCatalog(b)
}

// ParseCatalog decodes and validates YAML catalog content.
func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks struct constraints plus the ones the tags cannot express.
func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid presets: %w", err)
	}
	if _, ok := c.Presets[c.Default]; !ok {
		return fmt.Errorf("invalid presets: default %q: %w", c.Default, ErrUnknownPreset)
	}
	for id, p := range c.Presets {
		for i, o := range p.Options {
			if _, err := NormalizeLabel(o.Label); err != nil {
				return fmt.Errorf("invalid presets: %s option %d: %w", id, i, err)
			}
			if !ValidWeight(o.Weight) {
				return fmt.Errorf("invalid presets: %s option %d: %w", id, i, ErrInvalidWeight)
			}
		}
		if !finiteTotal(p.Options) {
			return fmt.Errorf("invalid presets: %s total weight: %w", id, ErrInvalidWeight)
		}
	}
	return nil
}

// Lookup returns a preset by id.
func (c *Catalog) Lookup(id string) (Preset, error) {
	p, ok := c.Presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
	}
	p.Options = slices.Clone(p.Options)
	return p, nil
}

// IDs returns preset ids sorted by title.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Presets))
	for id := range c.Presets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ti, tj := c.Presets[ids[i]].Title, c.Presets[ids[j]].Title
		if ti != tj {
			return ti < tj
		}
		return ids[i] < ids[j]
	})
	return ids
}
