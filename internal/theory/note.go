// Package theory implements note, scale and chord arithmetic for the
// arrangement engine. Everything here is pure: fixed lookup tables keyed by
// enumerated types, no state, no I/O.
package theory

import "fmt"

// sharpNames is the canonical spelling used for all internal lookups.
var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flatNames is used for display when a minor root reads more naturally
// with flats (e.g. Bb minor rather than A# minor).
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// flatMinorRoots are the minor-key roots conventionally spelled with flats.
var flatMinorRoots = map[int]bool{1: true, 3: true, 8: true, 10: true}

// notePitchClass maps every accepted spelling to its pitch class.
var notePitchClass = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D":  2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G":  7,
	"G#": 8, "Ab": 8,
	"A":  9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// PitchClassOf resolves a note name (sharp or flat spelling) to 0..11.
func PitchClassOf(name string) (int, error) {
	pc, ok := notePitchClass[name]
	if !ok {
		return 0, fmt.Errorf("unknown note name %q", name)
	}
	return pc, nil
}

// NoteName returns the canonical sharp spelling for a pitch class.
func NoteName(pc int) string {
	return sharpNames[((pc%12)+12)%12]
}

// DisplayRoot spells a key root for display. Minor keys on the
// conventionally flat roots come back with flat spelling.
func DisplayRoot(root string, mode Mode) (string, error) {
	pc, err := PitchClassOf(root)
	if err != nil {
		return "", err
	}
	if mode.IsMinor() && flatMinorRoots[pc] {
		return flatNames[pc], nil
	}
	return sharpNames[pc], nil
}

// MIDIPitch converts a pitch class and octave to a MIDI note number,
// clamped to the valid 0..127 range. C4 = 60.
func MIDIPitch(pc, octave int) int {
	n := (octave+1)*12 + pc
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return n
}

// Interval is a semitone distance with a display name.
type Interval struct {
	Semitones int
	Name      string
}

var intervalNames = [13]string{
	"unison", "minor 2nd", "major 2nd", "minor 3rd", "major 3rd",
	"perfect 4th", "tritone", "perfect 5th", "minor 6th", "major 6th",
	"minor 7th", "major 7th", "octave",
}

// IntervalBetween names the interval from a to b in semitones. Distances
// beyond two octaves are rejected.
func IntervalBetween(a, b int) (Interval, error) {
	d := b - a
	if d < -24 || d > 24 {
		return Interval{}, fmt.Errorf("interval %d out of range", d)
	}
	abs := d
	if abs < 0 {
		abs = -abs
	}
	name := intervalNames[abs%12]
	if abs == 12 || abs == 24 {
		name = "octave"
	} else if abs > 12 {
		name = intervalNames[abs-12] + " + octave"
	}
	return Interval{Semitones: d, Name: name}, nil
}
