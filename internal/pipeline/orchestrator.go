// Package pipeline wires the generators into the full arrangement flow:
// harmonize (or suggest), voice-lead, bass, drums. It owns the injected
// template store; each stage's output is immutable input to the next.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/groovekit/groovekit/internal/bass"
	"github.com/groovekit/groovekit/internal/drums"
	"github.com/groovekit/groovekit/internal/genre"
	"github.com/groovekit/groovekit/internal/harmony"
	"github.com/groovekit/groovekit/internal/logger"
	"github.com/groovekit/groovekit/internal/models"
	"github.com/groovekit/groovekit/internal/theory"
	"github.com/groovekit/groovekit/internal/voicing"
)

// Request describes one arrangement to generate. Notes are optional: when
// empty the progression is suggested from key, genre and mood alone.
type Request struct {
	Notes     []models.Note
	Key       models.Key
	Genre     string
	Mood      harmony.Mood
	Style     theory.VoicingStyle
	BassStyle string
	Bars      int
	Energy    int
	BPM       float64
	Duration  float64
	Humanize  bool
	Slides    bool
	Seed      int64
}

// Arrangement is the complete generated result, ready for MIDI export.
type Arrangement struct {
	ID       string                `json:"id"`
	Voicing  *models.VoicingResult `json:"voicing"`
	Voiced   []models.VoicedChord  `json:"voiced"`
	Bass     []models.BassNote     `json:"bass"`
	Drums    *models.DrumPattern   `json:"drums"`
	Movement int                   `json:"movement"`
}

// Orchestrator runs the generation stages over a shared template store.
type Orchestrator struct {
	store      *genre.Store
	harmonizer *harmony.Harmonizer
	bass       *bass.Generator
	drums      *drums.Generator
}

// New builds an orchestrator with a fresh template store.
func New() *Orchestrator {
	store := genre.NewStore()
	return &Orchestrator{
		store:      store,
		harmonizer: harmony.NewHarmonizer(store),
		bass:       bass.NewGenerator(store),
		drums:      drums.NewGenerator(store),
	}
}

// Store exposes the injected template store for callers that need genre
// metadata alongside generation.
func (o *Orchestrator) Store() *genre.Store {
	return o.store
}

// Arrange runs the full pipeline for one request.
func (o *Orchestrator) Arrange(req Request) (*Arrangement, error) {
	start := time.Now()

	var (
		result *models.VoicingResult
		err    error
	)
	if len(req.Notes) > 0 {
		result, err = o.harmonizer.HarmonizeMelody(req.Notes, req.Key.Root, req.Key.Mode, req.Genre, req.Bars, req.Duration, req.Style)
	} else {
		result, err = o.harmonizer.SuggestProgression(req.Key.Root, req.Key.Mode, req.Genre, req.Mood, req.Bars, req.Style)
	}
	if err != nil {
		return nil, fmt.Errorf("harmonization: %w", err)
	}

	voiced := voicing.Optimize(result.Chords)

	bassLine, err := o.bass.Generate(result.Chords, req.Genre, req.BassStyle, req.Bars, bass.Options{
		Humanize: req.Humanize,
		Slides:   req.Slides,
		Seed:     req.Seed,
		BPM:      req.BPM,
	})
	if err != nil {
		return nil, fmt.Errorf("bass generation: %w", err)
	}

	pattern, err := o.drums.Generate(req.Genre, req.Bars, req.Energy, req.BPM, req.Humanize, req.Seed)
	if err != nil {
		return nil, fmt.Errorf("drum generation: %w", err)
	}

	arr := &Arrangement{
		ID:       uuid.NewString(),
		Voicing:  result,
		Voiced:   voiced,
		Bass:     bassLine,
		Drums:    pattern,
		Movement: voicing.TotalCost(voiced),
	}

	logger.Info("Arrangement generated", logger.Fields{
		"arrangement_id": arr.ID,
		"genre":          req.Genre,
		"key":            result.KeyRoot + " " + string(result.KeyMode),
		"bars":           req.Bars,
		"bass_notes":     len(bassLine),
		"drum_hits":      len(pattern.Hits),
		"movement":       arr.Movement,
		"duration_ms":    time.Since(start).Milliseconds(),
	})
	return arr, nil
}
