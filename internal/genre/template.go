// Package genre loads and memoizes the declarative per-genre template
// documents that drive the harmonization, bass and drum generators.
package genre

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Template is a parsed genre document. Read-only after load.
type Template struct {
	Genre        string        `yaml:"genre"`
	Voicing      string        `yaml:"voicing"`
	Progressions []Progression `yaml:"progressions"`
	BassPatterns []BassPattern `yaml:"bass_patterns"`
	Drums        *DrumSection  `yaml:"drum_patterns"`
}

// Progression is a weighted chord-degree sequence.
type Progression struct {
	Degrees []int   `yaml:"degrees"`
	Weight  float64 `yaml:"weight"`
}

// BassPattern is a named rhythmic template. Each note entry is
// [step, semitone offset, duration in steps, base velocity].
type BassPattern struct {
	Style      string  `yaml:"style"`
	BaseOctave int     `yaml:"base_octave"`
	Notes      [][]int `yaml:"notes"`
}

// DrumSection holds the drum grids, fills, probabilities and energy layers.
type DrumSection struct {
	VelocityBase map[string]int       `yaml:"velocity_base"`
	Grid         map[string][]int     `yaml:"grid"`
	Fill         FillSection          `yaml:"fill"`
	Probability  map[string][]float64 `yaml:"probability"`
	EnergyLayers map[int][]string     `yaml:"energy_layers"`
}

// FillSection is the phrase-end replacement grid. In the document it is a
// flat mapping of every_n_bars plus one grid per instrument, so it needs a
// custom unmarshaler.
type FillSection struct {
	EveryNBars int
	Grids      map[string][]int
}

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (f *FillSection) UnmarshalYAML(b []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("fill section: %w", err)
	}
	f.Grids = make(map[string][]int, len(raw))
	for key, value := range raw {
		if key == "every_n_bars" {
			n, err := asInt(value)
			if err != nil {
				return fmt.Errorf("fill every_n_bars: %w", err)
			}
			f.EveryNBars = n
			continue
		}
		grid, err := asIntSlice(value)
		if err != nil {
			return fmt.Errorf("fill grid %q: %w", key, err)
		}
		f.Grids[key] = grid
	}
	return nil
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("expected integer, got %T", v)
}

func asIntSlice(v any) ([]int, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected sequence, got %T", v)
	}
	out := make([]int, len(items))
	for i, item := range items {
		n, err := asInt(item)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
