package pipeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groovekit/groovekit/internal/harmony"
	"github.com/groovekit/groovekit/internal/models"
	"github.com/groovekit/groovekit/internal/theory"
	"github.com/groovekit/groovekit/internal/voicing"
)

func TestArrange_SuggestedProgression(t *testing.T) {
	o := New()
	arr, err := o.Arrange(Request{
		Key:       models.Key{Root: "A", Mode: theory.ModeMinor},
		Genre:     "organic house",
		Mood:      harmony.MoodDark,
		BassStyle: "sub",
		Bars:      4,
		Energy:    6,
		BPM:       122,
		Humanize:  true,
		Slides:    true,
		Seed:      42,
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(arr.ID)
	assert.NoError(t, parseErr)

	require.NotNil(t, arr.Voicing)
	assert.Len(t, arr.Voicing.Chords, 4)
	assert.Equal(t, "A", arr.Voicing.KeyRoot)
	assert.Equal(t, []string{"i7", "VI7", "iv7", "v7"}, arr.Voicing.Romans)

	require.Len(t, arr.Voiced, 4)
	assert.Equal(t, 0, arr.Voiced[0].Movement)
	assert.Equal(t, voicing.TotalCost(arr.Voiced), arr.Movement)

	assert.NotEmpty(t, arr.Bass)
	require.NotNil(t, arr.Drums)
	assert.NotEmpty(t, arr.Drums.Hits)
	assert.Equal(t, 4, arr.Drums.Bars)
}

func TestArrange_MelodyPath(t *testing.T) {
	o := New()
	melody := []models.Note{
		{Pitch: 60, Onset: 0.0, Duration: 1.0, Velocity: 100},
		{Pitch: 64, Onset: 0.5, Duration: 0.5, Velocity: 96},
		{Pitch: 65, Onset: 2.0, Duration: 1.0, Velocity: 92},
		{Pitch: 69, Onset: 2.5, Duration: 1.0, Velocity: 90},
	}
	arr, err := o.Arrange(Request{
		Notes:     melody,
		Key:       models.Key{Root: "C", Mode: theory.ModeMajor},
		Genre:     "deep house",
		Style:     theory.VoicingTriads,
		BassStyle: "offbeat",
		Bars:      2,
		Energy:    4,
		BPM:       120,
		Duration:  4.0,
	})
	require.NoError(t, err)

	require.Len(t, arr.Voicing.Chords, 2)
	assert.Equal(t, "C", arr.Voicing.Chords[0].Root, "the first window sits on C E")
	for _, c := range arr.Voicing.Chords {
		assert.Len(t, c.Notes, 3, "style override forces triads")
	}
	assert.NotEmpty(t, arr.Bass)
	assert.NotEmpty(t, arr.Drums.Hits)
}

func TestArrange_Errors(t *testing.T) {
	o := New()

	_, err := o.Arrange(Request{
		Key:   models.Key{Root: "A", Mode: theory.ModeMinor},
		Genre: "chiptune",
		Bars:  4,
	})
	assert.Error(t, err, "unknown genre surfaces from harmonization")

	_, err = o.Arrange(Request{
		Key:   models.Key{Root: "H", Mode: theory.ModeMinor},
		Genre: "organic house",
		Bars:  4,
	})
	assert.Error(t, err, "invalid key root")

	_, err = o.Arrange(Request{
		Key:    models.Key{Root: "A", Mode: theory.ModeMinor},
		Genre:  "organic house",
		Bars:   4,
		Energy: 99,
	})
	assert.Error(t, err, "energy out of range")
}

func TestArrange_SeedReproducibility(t *testing.T) {
	o := New()
	req := Request{
		Key:       models.Key{Root: "F#", Mode: theory.ModeMinor},
		Genre:     "melodic techno",
		Mood:      harmony.MoodHypnotic,
		BassStyle: "rolling",
		Bars:      8,
		Energy:    7,
		BPM:       126,
		Humanize:  true,
		Seed:      7,
	}

	first, err := o.Arrange(req)
	require.NoError(t, err)
	second, err := o.Arrange(req)
	require.NoError(t, err)

	assert.Equal(t, first.Bass, second.Bass)
	assert.Equal(t, first.Drums.Hits, second.Drums.Hits)
	assert.Equal(t, first.Voicing.Romans, second.Voicing.Romans)
	assert.NotEqual(t, first.ID, second.ID)
}