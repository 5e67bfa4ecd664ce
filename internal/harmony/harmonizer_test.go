package harmony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groovekit/groovekit/internal/genre"
	"github.com/groovekit/groovekit/internal/models"
	"github.com/groovekit/groovekit/internal/theory"
)

func newHarmonizer() *Harmonizer {
	return NewHarmonizer(genre.NewStore())
}

func TestSuggestProgression_DarkOrganicHouse(t *testing.T) {
	h := newHarmonizer()
	result, err := h.SuggestProgression("A", theory.ModeMinor, "organic house", MoodDark, 4, "")
	require.NoError(t, err)

	require.Len(t, result.Chords, 4)
	assert.Equal(t, 4, result.Bars)
	assert.Equal(t, "A", result.KeyRoot)
	assert.Equal(t, "organic house", result.Genre)

	// The dark bias selects the i-VI-iv-v progression; organic house
	// voices sevenths by default.
	assert.Equal(t, []string{"i7", "VI7", "iv7", "v7"}, result.Romans)
	assert.Equal(t, 0, result.Chords[0].Degree, "dark mood keeps the tonic first")
	assert.Equal(t, "Am7", result.Chords[0].Name)
}

func TestSuggestProgression_CyclesDegrees(t *testing.T) {
	h := newHarmonizer()
	result, err := h.SuggestProgression("A", theory.ModeMinor, "organic house", MoodDark, 6, "")
	require.NoError(t, err)

	require.Len(t, result.Chords, 6)
	// Bars 4 and 5 wrap around to the start of the progression.
	assert.Equal(t, result.Chords[0].Name, result.Chords[4].Name)
	assert.Equal(t, result.Chords[1].Name, result.Chords[5].Name)
}

func TestSuggestProgression_StyleOverride(t *testing.T) {
	h := newHarmonizer()
	result, err := h.SuggestProgression("A", theory.ModeMinor, "organic house", MoodNeutral, 4, theory.VoicingTriads)
	require.NoError(t, err)
	assert.Equal(t, "Am", result.Chords[0].Name)
	assert.Len(t, result.Chords[0].Notes, 3)
}

func TestSuggestProgression_Errors(t *testing.T) {
	h := newHarmonizer()

	_, err := h.SuggestProgression("A", theory.ModeMinor, "organic house", MoodDark, 0, "")
	assert.Error(t, err, "non-positive bars")

	_, err = h.SuggestProgression("A", theory.ModeMinor, "yacht rock", MoodDark, 4, "")
	assert.Error(t, err, "unknown genre")

	_, err = h.SuggestProgression("A", theory.ModeMinor, "organic house", Mood("gloomy"), 4, "")
	assert.Error(t, err, "unknown mood")

	_, err = h.SuggestProgression("X", theory.ModeMinor, "organic house", MoodDark, 4, "")
	assert.Error(t, err, "unknown root")
}

func TestHarmonizeMelody_PitchClassOverlap(t *testing.T) {
	h := newHarmonizer()

	// Four one-second windows over 4 bars: C-E-G, then F-A-C, then
	// G-B-D, then silence.
	melody := []models.Note{
		{Pitch: 60, Onset: 0.0, Duration: 0.5, Velocity: 100}, // C
		{Pitch: 64, Onset: 0.3, Duration: 0.5, Velocity: 100}, // E
		{Pitch: 67, Onset: 0.6, Duration: 0.4, Velocity: 100}, // G
		{Pitch: 65, Onset: 1.1, Duration: 0.5, Velocity: 100}, // F
		{Pitch: 69, Onset: 1.4, Duration: 0.5, Velocity: 100}, // A
		{Pitch: 72, Onset: 1.7, Duration: 0.3, Velocity: 100}, // C
		{Pitch: 67, Onset: 2.1, Duration: 0.5, Velocity: 100}, // G
		{Pitch: 71, Onset: 2.4, Duration: 0.5, Velocity: 100}, // B
		{Pitch: 74, Onset: 2.7, Duration: 0.3, Velocity: 100}, // D
	}

	result, err := h.HarmonizeMelody(melody, "C", theory.ModeMajor, "organic house", 4, 4.0, theory.VoicingTriads)
	require.NoError(t, err)
	require.Len(t, result.Chords, 4)

	assert.Equal(t, "C", result.Chords[0].Name)
	assert.Equal(t, "F", result.Chords[1].Name)
	assert.Equal(t, "G", result.Chords[2].Name)
	// Empty window falls back to the tonic.
	assert.Equal(t, 0, result.Chords[3].Degree)
}

func TestHarmonizeMelody_NoMelodyAllTonic(t *testing.T) {
	h := newHarmonizer()
	result, err := h.HarmonizeMelody(nil, "A", theory.ModeMinor, "organic house", 4, 0, "")
	require.NoError(t, err)
	for i, c := range result.Chords {
		assert.Equal(t, 0, c.Degree, "bar %d", i)
	}
}

func TestHarmonizeMelody_InfersDurationFromNotes(t *testing.T) {
	h := newHarmonizer()

	// Only the last bar window of the inferred 8-second span has content.
	melody := []models.Note{
		{Pitch: 64, Onset: 7.0, Duration: 1.0, Velocity: 90}, // E
		{Pitch: 67, Onset: 7.4, Duration: 0.5, Velocity: 90}, // G
		{Pitch: 71, Onset: 7.8, Duration: 0.2, Velocity: 90}, // B
	}
	result, err := h.HarmonizeMelody(melody, "C", theory.ModeMajor, "organic house", 4, 0, theory.VoicingTriads)
	require.NoError(t, err)

	assert.Equal(t, "Em", result.Chords[3].Name)
	assert.Equal(t, 0, result.Chords[0].Degree)
}

func TestParseMood(t *testing.T) {
	for _, s := range []string{"dark", "euphoric", "tense", "dreamy", "hypnotic", "neutral", ""} {
		_, err := ParseMood(s)
		assert.NoError(t, err, "mood %q", s)
	}
	_, err := ParseMood("brooding")
	assert.Error(t, err)
}

func TestDegreeRank(t *testing.T) {
	rank := degreeRank([]genre.Progression{
		{Degrees: []int{0, 5, 3}, Weight: 1.0},
		{Degrees: []int{0, 4}, Weight: 0.5},
	})

	// Degree 0 leads both progressions and must rank first; degrees
	// never mentioned rank last.
	assert.Equal(t, 0, rank[0])
	assert.Less(t, rank[5], rank[6])
	assert.Equal(t, 4, rank[6])
}
