// Package drums builds 16-step multi-instrument drum grids from genre
// templates, with phrase-end fills, energy-gated instrumentation,
// probabilistic hit omission and hi-hat ghost notes.
package drums

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/groovekit/groovekit/internal/genre"
	"github.com/groovekit/groovekit/internal/humanize"
	"github.com/groovekit/groovekit/internal/models"
)

const (
	stepsPerBar = 16

	velocityJitterAmt = 6
	defaultBaseVel    = 96

	// Ghost notes only appear once the groove carries some energy.
	ghostChance    = 0.12
	ghostMinEnergy = 3

	// Energy scales velocity linearly from half strength to full.
	minEnergyMultiplier = 0.50
	maxEnergy           = 10
)

// Generator renders drum patterns from genre templates.
type Generator struct {
	store *genre.Store
}

// NewGenerator builds a drum generator over an injected template store.
func NewGenerator(store *genre.Store) *Generator {
	return &Generator{store: store}
}

// Generate builds the pattern for a genre at the given energy. Identical
// inputs and seed produce identical output.
func (g *Generator) Generate(genreName string, bars, energy int, bpm float64, humanizeOn bool, seed int64) (*models.DrumPattern, error) {
	if bars <= 0 {
		return nil, fmt.Errorf("bars must be positive, got %d", bars)
	}
	if energy < 0 || energy > maxEnergy {
		return nil, fmt.Errorf("energy %d outside 0..%d", energy, maxEnergy)
	}

	tmpl, err := g.store.Load(genreName)
	if err != nil {
		return nil, err
	}
	if tmpl.Drums == nil {
		return nil, fmt.Errorf("genre %q template has no drum section", genreName)
	}
	section := tmpl.Drums

	multiplier := minEnergyMultiplier + (1.0-minEnergyMultiplier)*float64(energy)/float64(maxEnergy)
	active := activeInstruments(section, energy)
	phrase := section.Fill.EveryNBars

	rng := humanize.NewRand(seed)
	var hits []models.DrumHit

	for bar := 0; bar < bars; bar++ {
		fillBar := phrase > 0 && (bar+1)%phrase == 0
		for _, inst := range active {
			grid := section.Grid[inst]
			if fillBar {
				grid = section.Fill.Grids[inst]
			}

			baseVel := section.VelocityBase[inst]
			if baseVel == 0 {
				baseVel = defaultBaseVel
			}
			scaled := int(math.Round(float64(baseVel) * multiplier))

			sounded := make([]bool, stepsPerBar)
			for step := 0; step < len(grid) && step < stepsPerBar; step++ {
				if grid[step] != 1 {
					continue
				}
				// Fills always play every grid hit.
				if humanizeOn && !fillBar && rng.Float64() >= stepProbability(section, inst, step) {
					continue
				}
				velocity := humanize.ClampVelocity(scaled)
				if humanizeOn {
					velocity = humanize.VelocityJitter(rng, scaled, velocityJitterAmt)
				}
				hits = append(hits, models.DrumHit{Instrument: inst, Step: step, Velocity: velocity, Bar: bar})
				sounded[step] = true
			}

			if humanizeOn && energy >= ghostMinEnergy && isHat(inst) {
				hits = append(hits, ghostHits(rng, inst, bar, scaled, sounded)...)
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Bar != hits[j].Bar {
			return hits[i].Bar < hits[j].Bar
		}
		return hits[i].Step < hits[j].Step
	})

	return &models.DrumPattern{
		Hits:        hits,
		StepsPerBar: stepsPerBar,
		Bars:        bars,
		BPM:         bpm,
		Genre:       genreName,
	}, nil
}

// activeInstruments unions every energy layer at or below the requested
// energy. A template without layers keeps every grid instrument active.
// The result is sorted so generation order is deterministic.
func activeInstruments(section *genre.DrumSection, energy int) []string {
	set := make(map[string]bool)
	if len(section.EnergyLayers) == 0 {
		for inst := range section.Grid {
			set[inst] = true
		}
	} else {
		for threshold, instruments := range section.EnergyLayers {
			if energy >= threshold {
				for _, inst := range instruments {
					set[inst] = true
				}
			}
		}
	}
	out := make([]string, 0, len(set))
	for inst := range set {
		out = append(out, inst)
	}
	sort.Strings(out)
	return out
}

func stepProbability(section *genre.DrumSection, inst string, step int) float64 {
	probs, ok := section.Probability[inst]
	if !ok || step >= len(probs) {
		return 1.0
	}
	return probs[step]
}

// ghostHits rolls a soft hit for each silent step of a hi-hat lane.
func ghostHits(rng *rand.Rand, inst string, bar, scaledVel int, sounded []bool) []models.DrumHit {
	var ghosts []models.DrumHit
	for step := 0; step < stepsPerBar; step++ {
		if sounded[step] {
			continue
		}
		if rng.Float64() < ghostChance {
			ghosts = append(ghosts, models.DrumHit{
				Instrument: inst,
				Step:       step,
				Velocity:   humanize.GhostVelocity(scaledVel),
				Bar:        bar,
			})
		}
	}
	return ghosts
}

func isHat(inst string) bool {
	return strings.Contains(inst, "hat")
}
