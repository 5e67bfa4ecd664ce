package theory

import "fmt"

// Quality is an enumerated chord quality with an exhaustive interval table.
type Quality string

const (
	QualityMajor   Quality = "major"
	QualityMinor   Quality = "minor"
	QualityDim     Quality = "dim"
	QualityAug     Quality = "aug"
	QualityMaj7    Quality = "maj7"
	QualityMin7    Quality = "min7"
	QualityDom7    Quality = "7"
	QualityM7b5    Quality = "m7b5"
	QualityDim7    Quality = "dim7"
	QualityMinMaj7 Quality = "minmaj7"
	QualityMaj7s5  Quality = "maj7#5"
	QualityMaj9    Quality = "maj9"
	QualityMin9    Quality = "min9"
	QualityDom9    Quality = "9"
	QualityMin7b9  Quality = "min7b9"
	QualityM7b5b9  Quality = "m7b5(b9)"
	QualityMinMaj9 Quality = "minmaj9"
	QualityMaj9s5  Quality = "maj9#5"
	QualityDom7b9  Quality = "7b9"
	QualityMaj7s9  Quality = "maj7(#9)"
	QualityDim7b9  Quality = "dim7(b9)"
)

// qualityIntervals is the exhaustive quality table, in semitones from the root.
var qualityIntervals = map[Quality][]int{
	QualityMajor:   {0, 4, 7},
	QualityMinor:   {0, 3, 7},
	QualityDim:     {0, 3, 6},
	QualityAug:     {0, 4, 8},
	QualityMaj7:    {0, 4, 7, 11},
	QualityMin7:    {0, 3, 7, 10},
	QualityDom7:    {0, 4, 7, 10},
	QualityM7b5:    {0, 3, 6, 10},
	QualityDim7:    {0, 3, 6, 9},
	QualityMinMaj7: {0, 3, 7, 11},
	QualityMaj7s5:  {0, 4, 8, 11},
	QualityMaj9:    {0, 4, 7, 11, 14},
	QualityMin9:    {0, 3, 7, 10, 14},
	QualityDom9:    {0, 4, 7, 10, 14},
	QualityMin7b9:  {0, 3, 7, 10, 13},
	QualityM7b5b9:  {0, 3, 6, 10, 13},
	QualityMinMaj9: {0, 3, 7, 11, 14},
	QualityMaj9s5:  {0, 4, 8, 11, 14},
	QualityDom7b9:  {0, 4, 7, 10, 13},
	QualityMaj7s9:  {0, 4, 7, 11, 15},
	QualityDim7b9:  {0, 3, 6, 9, 13},
}

// qualitySuffix maps a quality to its chord-symbol suffix.
var qualitySuffix = map[Quality]string{
	QualityMajor:   "",
	QualityMinor:   "m",
	QualityDim:     "dim",
	QualityAug:     "aug",
	QualityMaj7:    "maj7",
	QualityMin7:    "m7",
	QualityDom7:    "7",
	QualityM7b5:    "m7b5",
	QualityDim7:    "dim7",
	QualityMinMaj7: "mMaj7",
	QualityMaj7s5:  "maj7#5",
	QualityMaj9:    "maj9",
	QualityMin9:    "m9",
	QualityDom9:    "9",
	QualityMin7b9:  "m7b9",
	QualityM7b5b9:  "m7b5(b9)",
	QualityMinMaj9: "mMaj9",
	QualityMaj9s5:  "maj9#5",
	QualityDom7b9:  "7b9",
	QualityMaj7s9:  "maj7(#9)",
	QualityDim7b9:  "dim7(b9)",
}

// ParseQuality resolves a quality label.
func ParseQuality(s string) (Quality, error) {
	q := Quality(s)
	if _, ok := qualityIntervals[q]; !ok {
		return "", fmt.Errorf("unknown chord quality %q", s)
	}
	return q, nil
}

// VoicingStyle controls how far diatonic chords are stacked.
type VoicingStyle string

const (
	VoicingTriads   VoicingStyle = "triads"
	VoicingSeventh  VoicingStyle = "seventh"
	VoicingExtended VoicingStyle = "extended"
)

// ParseVoicingStyle resolves a voicing-style label.
func ParseVoicingStyle(s string) (VoicingStyle, error) {
	switch VoicingStyle(s) {
	case VoicingTriads, VoicingSeventh, VoicingExtended:
		return VoicingStyle(s), nil
	}
	return "", fmt.Errorf("unknown voicing style %q", s)
}

// Chord is an immutable diatonic chord: root-position MIDI voicing plus
// its analytical labels.
type Chord struct {
	Root    string
	Quality Quality
	Name    string
	Roman   string
	Degree  int
	Notes   []int
}

// PitchClasses returns the set of pitch classes sounding in the chord.
func (c Chord) PitchClasses() map[int]bool {
	set := make(map[int]bool, len(c.Notes))
	for _, n := range c.Notes {
		set[n%12] = true
	}
	return set
}

// chordOctave is the default register for root-position voicings.
const chordOctave = 3

// signature-to-quality tables for classifying diatonically stacked thirds.
var triadQualities = map[[2]int]Quality{
	{4, 7}: QualityMajor,
	{3, 7}: QualityMinor,
	{3, 6}: QualityDim,
	{4, 8}: QualityAug,
}

var seventhQualities = map[[3]int]Quality{
	{4, 7, 11}: QualityMaj7,
	{3, 7, 10}: QualityMin7,
	{4, 7, 10}: QualityDom7,
	{3, 6, 10}: QualityM7b5,
	{3, 6, 9}:  QualityDim7,
	{3, 7, 11}: QualityMinMaj7,
	{4, 8, 11}: QualityMaj7s5,
}

// ninthQualities keys a seventh quality plus the diatonic ninth interval.
type ninthKey struct {
	seventh Quality
	ninth   int
}

var ninthQualities = map[ninthKey]Quality{
	{QualityMaj7, 14}:    QualityMaj9,
	{QualityMin7, 14}:    QualityMin9,
	{QualityDom7, 14}:    QualityDom9,
	{QualityMin7, 13}:    QualityMin7b9,
	{QualityM7b5, 13}:    QualityM7b5b9,
	{QualityMinMaj7, 14}: QualityMinMaj9,
	{QualityMaj7s5, 14}:  QualityMaj9s5,
	{QualityDom7, 13}:    QualityDom7b9,
	{QualityMaj7, 15}:    QualityMaj7s9,
	{QualityDim7, 13}:    QualityDim7b9,
}

var romanNumerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

var lowerNumerals = [7]string{"i", "ii", "iii", "iv", "v", "vi", "vii"}

// romanFor builds the roman-numeral label for a degree and quality.
func romanFor(degree int, q Quality, style VoicingStyle) string {
	intervals := qualityIntervals[q]
	numeral := romanNumerals[degree]
	if len(intervals) > 1 && intervals[1] == 3 {
		numeral = lowerNumerals[degree]
	}
	if len(intervals) > 2 {
		switch intervals[2] {
		case 6:
			numeral += "°"
		case 8:
			numeral += "+"
		}
	}
	switch style {
	case VoicingSeventh:
		numeral += "7"
	case VoicingExtended:
		numeral += "9"
	}
	return numeral
}

// diatonicQuality stacks thirds on a degree of a 7-note mode and
// classifies the result. A signature outside the known tables falls back
// to the bare triad classification, so the function is total.
func diatonicQuality(offsets []int, degree int, style VoicingStyle) Quality {
	norm := func(step int) int {
		d := offsets[(degree+step)%7] - offsets[degree]
		return ((d % 12) + 12) % 12
	}
	third, fifth := norm(2), norm(4)
	triad, ok := triadQualities[[2]int{third, fifth}]
	if !ok {
		triad = QualityMajor
	}
	if style == VoicingTriads {
		return triad
	}

	seventh := norm(6)
	sev, ok := seventhQualities[[3]int{third, fifth, seventh}]
	if !ok {
		return triad
	}
	if style == VoicingSeventh {
		return sev
	}

	ninth := norm(1) + 12
	if ext, ok := ninthQualities[ninthKey{sev, ninth}]; ok {
		return ext
	}
	return sev
}

// DiatonicChords builds the seven root-position chords of a key, one per
// scale degree, at the default chord register. Pentatonic modes have no
// diatonic chord set and are rejected.
func DiatonicChords(root string, mode Mode, style VoicingStyle) ([]Chord, error) {
	keyPC, err := PitchClassOf(root)
	if err != nil {
		return nil, err
	}
	offsets, ok := modeOffsets[mode]
	if !ok {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	if len(offsets) != 7 {
		return nil, fmt.Errorf("mode %q has no diatonic chord set", mode)
	}
	if _, err := ParseVoicingStyle(string(style)); err != nil {
		return nil, err
	}

	chords := make([]Chord, 7)
	for d := 0; d < 7; d++ {
		q := diatonicQuality(offsets, d, style)
		rootPC := (keyPC + offsets[d]) % 12
		notes := buildNotes(rootPC, q, chordOctave)
		chords[d] = Chord{
			Root:    NoteName(rootPC),
			Quality: q,
			Name:    NoteName(rootPC) + qualitySuffix[q],
			Roman:   romanFor(d, q, style),
			Degree:  d,
			Notes:   notes,
		}
	}
	return chords, nil
}

// BuildChordMIDI voices a quality on a root note at the given octave and
// returns the MIDI pitches in root position.
func BuildChordMIDI(root string, quality Quality, octave int) ([]int, error) {
	pc, err := PitchClassOf(root)
	if err != nil {
		return nil, err
	}
	if _, ok := qualityIntervals[quality]; !ok {
		return nil, fmt.Errorf("unknown chord quality %q", quality)
	}
	return buildNotes(pc, quality, octave), nil
}

func buildNotes(rootPC int, q Quality, octave int) []int {
	intervals := qualityIntervals[q]
	notes := make([]int, 0, len(intervals))
	for _, iv := range intervals {
		notes = append(notes, clampMIDI(MIDIPitch(rootPC, octave)+iv))
	}
	return notes
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
