package harmony

import "fmt"

// Mood biases progression selection toward degrees that carry the wanted
// color. Neutral (or empty) applies no bias.
type Mood string

const (
	MoodDark     Mood = "dark"
	MoodEuphoric Mood = "euphoric"
	MoodTense    Mood = "tense"
	MoodDreamy   Mood = "dreamy"
	MoodHypnotic Mood = "hypnotic"
	MoodNeutral  Mood = "neutral"
)

// moodDegreeWeights multiplies a progression's score per degree it
// contains. Unlisted degrees weigh 1.0.
var moodDegreeWeights = map[Mood]map[int]float64{
	MoodDark:     {0: 1.5, 3: 1.2, 4: 0.8, 5: 1.3},
	MoodEuphoric: {0: 1.1, 3: 1.4, 4: 1.3, 5: 0.8},
	MoodTense:    {1: 1.4, 4: 1.2, 6: 1.5},
	MoodDreamy:   {1: 1.2, 2: 1.2, 3: 1.3},
	MoodHypnotic: {0: 1.6, 3: 1.1},
	MoodNeutral:  {},
}

// ParseMood resolves a mood tag. The empty string is treated as neutral.
func ParseMood(s string) (Mood, error) {
	if s == "" {
		return MoodNeutral, nil
	}
	m := Mood(s)
	if _, ok := moodDegreeWeights[m]; !ok {
		return "", fmt.Errorf("unknown mood %q", s)
	}
	return m, nil
}

// degreeWeight returns the mood multiplier for a scale degree.
func (m Mood) degreeWeight(degree int) float64 {
	if w, ok := moodDegreeWeights[m][degree]; ok {
		return w
	}
	return 1.0
}
