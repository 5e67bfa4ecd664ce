// Package harmony maps melody pitch content, or a bare key and mood, onto
// a genre's diatonic chord set — one chord per bar.
package harmony

import (
	"fmt"
	"sort"

	"github.com/groovekit/groovekit/internal/genre"
	"github.com/groovekit/groovekit/internal/models"
	"github.com/groovekit/groovekit/internal/theory"
)

// fallbackBarSeconds is assumed per bar when neither a total duration nor
// any melody note is available.
const fallbackBarSeconds = 2.0

// Harmonizer selects diatonic chords using a genre template's
// progressions as the stylistic prior.
type Harmonizer struct {
	store *genre.Store
}

// NewHarmonizer builds a harmonizer over an injected template store.
func NewHarmonizer(store *genre.Store) *Harmonizer {
	return &Harmonizer{store: store}
}

// HarmonizeMelody buckets melody notes into equal-length bar windows and
// selects, per window, the diatonic chord with the highest pitch-class
// overlap. Ties break toward the genre's preferred degrees; empty windows
// take the tonic. An empty style uses the template's declared voicing.
func (h *Harmonizer) HarmonizeMelody(notes []models.Note, keyRoot string, keyMode theory.Mode, genreName string, bars int, totalDuration float64, style theory.VoicingStyle) (*models.VoicingResult, error) {
	if bars <= 0 {
		return nil, fmt.Errorf("bars must be positive, got %d", bars)
	}
	tmpl, err := h.store.Load(genreName)
	if err != nil {
		return nil, err
	}
	chords, err := h.diatonicChords(tmpl, keyRoot, keyMode, style)
	if err != nil {
		return nil, err
	}

	if totalDuration <= 0 {
		for _, n := range notes {
			if n.End() > totalDuration {
				totalDuration = n.End()
			}
		}
	}
	if totalDuration <= 0 {
		totalDuration = fallbackBarSeconds * float64(bars)
	}
	windowDur := totalDuration / float64(bars)

	windows := make([]map[int]bool, bars)
	for i := range windows {
		windows[i] = make(map[int]bool)
	}
	for _, n := range notes {
		idx := int(n.Onset / windowDur)
		if idx < 0 {
			idx = 0
		}
		if idx >= bars {
			idx = bars - 1
		}
		windows[idx][n.Pitch%12] = true
	}

	rank := degreeRank(tmpl.Progressions)
	selected := make([]theory.Chord, bars)
	for bar, window := range windows {
		selected[bar] = pickChord(chords, window, rank)
	}

	return models.NewVoicingResult(selected, theory.NoteName(mustPC(keyRoot)), keyMode, genreName, bars)
}

// SuggestProgression picks the genre progression whose template weight,
// biased by the mood's per-degree multipliers, scores highest, then cycles
// its degrees to fill the requested bars.
func (h *Harmonizer) SuggestProgression(keyRoot string, keyMode theory.Mode, genreName string, mood Mood, bars int, style theory.VoicingStyle) (*models.VoicingResult, error) {
	if bars <= 0 {
		return nil, fmt.Errorf("bars must be positive, got %d", bars)
	}
	if _, err := ParseMood(string(mood)); err != nil {
		return nil, err
	}
	tmpl, err := h.store.Load(genreName)
	if err != nil {
		return nil, err
	}
	if len(tmpl.Progressions) == 0 {
		return nil, fmt.Errorf("genre %q template has no progressions", genreName)
	}
	chords, err := h.diatonicChords(tmpl, keyRoot, keyMode, style)
	if err != nil {
		return nil, err
	}

	best := tmpl.Progressions[0]
	bestScore := progressionScore(best, mood)
	for _, p := range tmpl.Progressions[1:] {
		if s := progressionScore(p, mood); s > bestScore {
			best, bestScore = p, s
		}
	}

	selected := make([]theory.Chord, bars)
	for bar := 0; bar < bars; bar++ {
		d := best.Degrees[bar%len(best.Degrees)]
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("genre %q progression degree %d out of range", genreName, d)
		}
		selected[bar] = chords[d]
	}

	return models.NewVoicingResult(selected, theory.NoteName(mustPC(keyRoot)), keyMode, genreName, bars)
}

func (h *Harmonizer) diatonicChords(tmpl *genre.Template, keyRoot string, keyMode theory.Mode, style theory.VoicingStyle) ([]theory.Chord, error) {
	if style == "" {
		parsed, err := theory.ParseVoicingStyle(tmpl.Voicing)
		if err != nil {
			return nil, fmt.Errorf("genre %q template voicing: %w", tmpl.Genre, err)
		}
		style = parsed
	}
	return theory.DiatonicChords(keyRoot, keyMode, style)
}

// progressionScore is template weight times the mean mood weight across
// the progression's degrees.
func progressionScore(p genre.Progression, mood Mood) float64 {
	if len(p.Degrees) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range p.Degrees {
		sum += mood.degreeWeight(d)
	}
	return p.Weight * sum / float64(len(p.Degrees))
}

// degreeRank orders scale degrees by how prominently the genre's
// progressions feature them: each progression contributes
// weight × 1/(position+1) to every degree it contains. Lower rank is
// more preferred; degrees never mentioned rank last.
func degreeRank(progressions []genre.Progression) map[int]int {
	scores := make(map[int]float64)
	for _, p := range progressions {
		for pos, d := range p.Degrees {
			scores[d] += p.Weight / float64(pos+1)
		}
	}

	degrees := make([]int, 0, len(scores))
	for d := range scores {
		degrees = append(degrees, d)
	}
	sort.Slice(degrees, func(i, j int) bool {
		if scores[degrees[i]] != scores[degrees[j]] {
			return scores[degrees[i]] > scores[degrees[j]]
		}
		return degrees[i] < degrees[j]
	})

	rank := make(map[int]int, 7)
	for d := 0; d < 7; d++ {
		rank[d] = len(degrees)
	}
	for i, d := range degrees {
		rank[d] = i
	}
	return rank
}

// pickChord scores every diatonic chord against a window's pitch-class
// set: overlap descending, then degree rank ascending. An empty window
// selects the tonic.
func pickChord(chords []theory.Chord, window map[int]bool, rank map[int]int) theory.Chord {
	if len(window) == 0 {
		return chords[0]
	}
	best := chords[0]
	bestOverlap := -1
	for _, c := range chords {
		overlap := 0
		for pc := range c.PitchClasses() {
			if window[pc] {
				overlap++
			}
		}
		if overlap > bestOverlap || (overlap == bestOverlap && rank[c.Degree] < rank[best.Degree]) {
			best, bestOverlap = c, overlap
		}
	}
	return best
}

func mustPC(root string) int {
	pc, err := theory.PitchClassOf(root)
	if err != nil {
		return 0
	}
	return pc
}
