// Package models holds the value types passed between the analysis front
// end, the generators and the MIDI serializer. Everything is an immutable
// record: constructors validate, transformations return new values.
package models

import (
	"fmt"

	"github.com/groovekit/groovekit/internal/theory"
)

// Note is a melody note as delivered by audio analysis.
type Note struct {
	Pitch    int     `json:"pitch"`
	Onset    float64 `json:"onset"`
	Duration float64 `json:"duration"`
	Velocity int     `json:"velocity"`
}

// End returns the note's off time in seconds.
func (n Note) End() float64 {
	return n.Onset + n.Duration
}

// Key is a detected or requested key.
type Key struct {
	Root       string      `json:"root"`
	Mode       theory.Mode `json:"mode"`
	Confidence float64     `json:"confidence"`
}

// VoicingResult is the harmonization engine's output: one chord per bar.
type VoicingResult struct {
	Chords  []theory.Chord `json:"chords"`
	KeyRoot string         `json:"key_root"`
	KeyMode theory.Mode    `json:"key_mode"`
	Genre   string         `json:"genre"`
	Bars    int            `json:"bars"`
	Romans  []string       `json:"romans"`
}

// NewVoicingResult validates the harmonization invariants before
// returning the immutable result.
func NewVoicingResult(chords []theory.Chord, keyRoot string, keyMode theory.Mode, genre string, bars int) (*VoicingResult, error) {
	if len(chords) == 0 {
		return nil, fmt.Errorf("voicing result requires at least one chord")
	}
	if bars <= 0 {
		return nil, fmt.Errorf("voicing result requires bars > 0, got %d", bars)
	}
	if keyRoot == "" {
		return nil, fmt.Errorf("voicing result requires a key root")
	}
	romans := make([]string, len(chords))
	for i, c := range chords {
		romans[i] = c.Roman
	}
	return &VoicingResult{
		Chords:  chords,
		KeyRoot: keyRoot,
		KeyMode: keyMode,
		Genre:   genre,
		Bars:    bars,
		Romans:  romans,
	}, nil
}

// VoicedChord wraps a chord with its register-optimized pitches and the
// movement cost relative to the previous chord (0 for the first).
type VoicedChord struct {
	Chord    theory.Chord `json:"chord"`
	Notes    []int        `json:"notes"`
	Movement int          `json:"movement"`
}

// BassNote is one generated bass event on the 16-step grid.
type BassNote struct {
	Pitch      int `json:"pitch"`
	Step       int `json:"step"`
	Duration   int `json:"duration"`
	Velocity   int `json:"velocity"`
	Bar        int `json:"bar"`
	TickOffset int `json:"tick_offset"`
}

// NewBassNote validates ranges before returning the immutable note.
func NewBassNote(pitch, step, duration, velocity, bar int) (BassNote, error) {
	if pitch < 0 || pitch > 127 {
		return BassNote{}, fmt.Errorf("bass pitch %d out of MIDI range", pitch)
	}
	if step < 0 || step > 15 {
		return BassNote{}, fmt.Errorf("bass step %d outside 16-step grid", step)
	}
	if velocity < 1 || velocity > 127 {
		return BassNote{}, fmt.Errorf("bass velocity %d out of range", velocity)
	}
	if bar < 0 {
		return BassNote{}, fmt.Errorf("bass bar %d negative", bar)
	}
	return BassNote{Pitch: pitch, Step: step, Duration: duration, Velocity: velocity, Bar: bar}, nil
}

// DrumHit is one generated drum event.
type DrumHit struct {
	Instrument string `json:"instrument"`
	Step       int    `json:"step"`
	Velocity   int    `json:"velocity"`
	Bar        int    `json:"bar"`
}

// DrumPattern aggregates the generated hits, sorted by bar then step.
type DrumPattern struct {
	Hits        []DrumHit `json:"hits"`
	StepsPerBar int       `json:"steps_per_bar"`
	Bars        int       `json:"bars"`
	BPM         float64   `json:"bpm"`
	Genre       string    `json:"genre"`
}
