// Package bass renders a genre's rhythmic bass template against a chord
// sequence, one bar per chord, with optional humanization and slide notes
// at chord changes.
package bass

import (
	"fmt"
	"math"
	"sort"

	"github.com/groovekit/groovekit/internal/genre"
	"github.com/groovekit/groovekit/internal/humanize"
	"github.com/groovekit/groovekit/internal/models"
	"github.com/groovekit/groovekit/internal/theory"
)

const (
	velocityJitter = 8
	slideStep      = 14
	slideDuration  = 2
	// slideVelocityRatio scales the slide against the bar's loudest note.
	slideVelocityRatio = 0.7
	defaultSlideVel    = 80
)

// Options control humanization and slide insertion for one call.
type Options struct {
	Humanize bool
	Slides   bool
	Seed     int64
	BPM      float64
}

// Generator renders bass lines from genre templates.
type Generator struct {
	store *genre.Store
}

// NewGenerator builds a bass generator over an injected template store.
func NewGenerator(store *genre.Store) *Generator {
	return &Generator{store: store}
}

// Generate emits one bar of the selected pattern per bar, transposed to
// that bar's chord root. An unknown style falls back to the genre's first
// pattern; an empty chord sequence yields an empty result.
func (g *Generator) Generate(chords []theory.Chord, genreName, style string, bars int, opts Options) ([]models.BassNote, error) {
	if bars <= 0 {
		return nil, fmt.Errorf("bars must be positive, got %d", bars)
	}
	if len(chords) == 0 {
		return nil, nil
	}

	tmpl, err := g.store.Load(genreName)
	if err != nil {
		return nil, err
	}
	if len(tmpl.BassPatterns) == 0 {
		return nil, fmt.Errorf("genre %q template has no bass patterns", genreName)
	}
	pattern := selectPattern(tmpl.BassPatterns, style)

	rng := humanize.NewRand(opts.Seed)
	var notes []models.BassNote

	for bar := 0; bar < bars; bar++ {
		chord := chords[bar%len(chords)]
		rootMIDI, err := barRoot(chord, pattern.BaseOctave)
		if err != nil {
			return nil, err
		}

		for _, entry := range pattern.Notes {
			if len(entry) != 4 {
				return nil, fmt.Errorf("genre %q bass pattern %q has malformed note entry %v", genreName, pattern.Style, entry)
			}
			step, offset, duration, baseVel := entry[0], entry[1], entry[2], entry[3]

			velocity := humanize.ClampVelocity(baseVel)
			if opts.Humanize {
				velocity = humanize.VelocityJitter(rng, baseVel, velocityJitter)
			}

			note, err := models.NewBassNote(clampMIDI(rootMIDI+offset), step, duration, velocity, bar)
			if err != nil {
				return nil, fmt.Errorf("genre %q bass pattern %q: %w", genreName, pattern.Style, err)
			}
			if opts.Humanize && opts.BPM > 0 {
				note.TickOffset = humanize.TimingJitterTicks(rng, opts.BPM)
			}
			notes = append(notes, note)
		}
	}

	if opts.Slides && bars > 1 {
		notes = addSlides(notes, chords, pattern.BaseOctave, bars)
	}

	sort.Slice(notes, func(i, j int) bool {
		if notes[i].Bar != notes[j].Bar {
			return notes[i].Bar < notes[j].Bar
		}
		return notes[i].Step < notes[j].Step
	})
	return notes, nil
}

// addSlides inserts an approach note at step 14 of every bar that leads
// into a different chord root, unless that step is already taken.
func addSlides(notes []models.BassNote, chords []theory.Chord, baseOctave, bars int) []models.BassNote {
	for bar := 1; bar < bars; bar++ {
		prevChord := chords[(bar-1)%len(chords)]
		currChord := chords[bar%len(chords)]
		if prevChord.Root == currChord.Root {
			continue
		}

		prevBar := bar - 1
		occupied := false
		loudest := 0
		for _, n := range notes {
			if n.Bar != prevBar {
				continue
			}
			if n.Step == slideStep {
				occupied = true
				break
			}
			if n.Velocity > loudest {
				loudest = n.Velocity
			}
		}
		if occupied {
			continue
		}

		velocity := defaultSlideVel
		if loudest > 0 {
			velocity = int(math.Round(float64(loudest) * slideVelocityRatio))
		}

		rootMIDI, err := barRoot(prevChord, baseOctave)
		if err != nil {
			continue
		}
		slide, err := models.NewBassNote(rootMIDI, slideStep, slideDuration, humanize.ClampVelocity(velocity), prevBar)
		if err != nil {
			continue
		}
		notes = append(notes, slide)
	}
	return notes
}

func selectPattern(patterns []genre.BassPattern, style string) genre.BassPattern {
	for _, p := range patterns {
		if p.Style == style {
			return p
		}
	}
	// Unknown style is a documented fallback, not an error.
	return patterns[0]
}

func barRoot(chord theory.Chord, baseOctave int) (int, error) {
	pc, err := theory.PitchClassOf(chord.Root)
	if err != nil {
		return 0, fmt.Errorf("chord root: %w", err)
	}
	return theory.MIDIPitch(pc, baseOctave), nil
}

func clampMIDI(n int) int {
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return n
}
