package theory

import "fmt"

// Mode is an enumerated scale mode. Unknown labels fail at parse time
// instead of silently missing a lookup.
type Mode string

const (
	ModeMajor           Mode = "major"
	ModeMinor           Mode = "minor"
	ModeDorian          Mode = "dorian"
	ModePhrygian        Mode = "phrygian"
	ModeLydian          Mode = "lydian"
	ModeMixolydian      Mode = "mixolydian"
	ModeLocrian         Mode = "locrian"
	ModeHarmonicMinor   Mode = "harmonic minor"
	ModeMajorPentatonic Mode = "major pentatonic"
	ModeMinorPentatonic Mode = "minor pentatonic"
)

// modeOffsets holds semitone offsets from the root for each mode.
var modeOffsets = map[Mode][]int{
	ModeMajor:           {0, 2, 4, 5, 7, 9, 11},
	ModeMinor:           {0, 2, 3, 5, 7, 8, 10},
	ModeDorian:          {0, 2, 3, 5, 7, 9, 10},
	ModePhrygian:        {0, 1, 3, 5, 7, 8, 10},
	ModeLydian:          {0, 2, 4, 6, 7, 9, 11},
	ModeMixolydian:      {0, 2, 4, 5, 7, 9, 10},
	ModeLocrian:         {0, 1, 3, 5, 6, 8, 10},
	ModeHarmonicMinor:   {0, 2, 3, 5, 7, 8, 11},
	ModeMajorPentatonic: {0, 2, 4, 7, 9},
	ModeMinorPentatonic: {0, 3, 5, 7, 10},
}

var modeAliases = map[string]Mode{
	"major": ModeMajor, "ionian": ModeMajor,
	"minor": ModeMinor, "aeolian": ModeMinor, "natural minor": ModeMinor,
	"dorian":           ModeDorian,
	"phrygian":         ModePhrygian,
	"lydian":           ModeLydian,
	"mixolydian":       ModeMixolydian,
	"locrian":          ModeLocrian,
	"harmonic minor":   ModeHarmonicMinor,
	"major pentatonic": ModeMajorPentatonic,
	"minor pentatonic": ModeMinorPentatonic,
}

// ParseMode resolves a mode label, accepting the common aliases
// (ionian, aeolian).
func ParseMode(s string) (Mode, error) {
	m, ok := modeAliases[s]
	if !ok {
		return "", fmt.Errorf("unknown mode %q", s)
	}
	return m, nil
}

// IsMinor reports whether the mode has a minor third above the root.
func (m Mode) IsMinor() bool {
	offs, ok := modeOffsets[m]
	if !ok || len(offs) < 2 {
		return false
	}
	for _, o := range offs {
		if o == 3 {
			return true
		}
		if o == 4 {
			return false
		}
	}
	return false
}

// Scale is a root plus mode with its resolved note names.
type Scale struct {
	Root  string
	Mode  Mode
	Notes []string
}

// ScaleNotes returns the note names of root+mode, 7 for the diatonic
// modes and 5 for the pentatonics.
func ScaleNotes(root string, mode Mode) ([]string, error) {
	rootPC, err := PitchClassOf(root)
	if err != nil {
		return nil, err
	}
	offs, ok := modeOffsets[mode]
	if !ok {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	notes := make([]string, len(offs))
	for i, o := range offs {
		notes[i] = NoteName(rootPC + o)
	}
	return notes, nil
}

// NewScale builds a Scale value for root+mode.
func NewScale(root string, mode Mode) (Scale, error) {
	notes, err := ScaleNotes(root, mode)
	if err != nil {
		return Scale{}, err
	}
	return Scale{Root: NoteName(mustPitchClass(root)), Mode: mode, Notes: notes}, nil
}

// PitchClasses returns the scale's pitch-class set.
func PitchClasses(root string, mode Mode) (map[int]bool, error) {
	rootPC, err := PitchClassOf(root)
	if err != nil {
		return nil, err
	}
	offs, ok := modeOffsets[mode]
	if !ok {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	set := make(map[int]bool, len(offs))
	for _, o := range offs {
		set[(rootPC+o)%12] = true
	}
	return set, nil
}

// mustPitchClass is for callers that already validated the note name.
func mustPitchClass(name string) int {
	pc, err := PitchClassOf(name)
	if err != nil {
		return 0
	}
	return pc
}
