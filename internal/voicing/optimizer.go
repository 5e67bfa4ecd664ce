// Package voicing re-registers chord sequences to minimize melodic
// movement between successive chords. Pitch classes are never changed,
// only the octave each one sounds in.
package voicing

import (
	"sort"

	"github.com/groovekit/groovekit/internal/models"
	"github.com/groovekit/groovekit/internal/theory"
)

const (
	registerLow  = 36
	registerHigh = 84
	// maxSpan keeps candidates in closed position.
	maxSpan = 14
	// parallelFifthPenalty is added per parallel-perfect-fifth voice pair.
	parallelFifthPenalty = 12
	// maxCandidates bounds the brute-force enumeration for large chords.
	maxCandidates = 20000
)

// Optimize greedily re-voices each chord after the first against the
// previous chord's chosen pitches. A chord with no in-register candidate
// keeps its root-position voicing.
func Optimize(chords []theory.Chord) []models.VoicedChord {
	voiced := make([]models.VoicedChord, 0, len(chords))
	var prev []int

	for i, chord := range chords {
		target := prev
		if i == 0 {
			target = chord.Notes
		}

		candidates := enumerate(chordPitchClasses(chord))
		chosen := chord.Notes
		if len(candidates) > 0 {
			best := candidates[0]
			bestCost := movementCost(target, best)
			for _, cand := range candidates[1:] {
				if c := movementCost(target, cand); c < bestCost {
					best, bestCost = cand, c
				}
			}
			chosen = best
		}

		movement := 0
		if i > 0 {
			movement = movementCost(prev, chosen)
		}
		voiced = append(voiced, models.VoicedChord{Chord: chord, Notes: chosen, Movement: movement})
		prev = chosen
	}
	return voiced
}

// TotalCost sums the recorded movement across a voiced sequence.
func TotalCost(voiced []models.VoicedChord) int {
	total := 0
	for _, v := range voiced {
		total += v.Movement
	}
	return total
}

// chordPitchClasses lists the distinct pitch classes of a chord in
// voicing order.
func chordPitchClasses(c theory.Chord) []int {
	seen := make(map[int]bool, len(c.Notes))
	pcs := make([]int, 0, len(c.Notes))
	for _, n := range c.Notes {
		pc := n % 12
		if !seen[pc] {
			seen[pc] = true
			pcs = append(pcs, pc)
		}
	}
	return pcs
}

// enumerate produces every in-register combination of concrete pitches,
// one per pitch class, whose span stays in closed position. Each
// candidate comes back sorted low to high so voices pair by index.
func enumerate(pcs []int) [][]int {
	options := make([][]int, len(pcs))
	for i, pc := range pcs {
		for n := registerLow; n <= registerHigh; n++ {
			if n%12 == pc {
				options[i] = append(options[i], n)
			}
		}
		if len(options[i]) == 0 {
			return nil
		}
	}

	var out [][]int
	combo := make([]int, len(pcs))
	var walk func(depth int)
	walk = func(depth int) {
		if len(out) >= maxCandidates {
			return
		}
		if depth == len(pcs) {
			cand := make([]int, len(combo))
			copy(cand, combo)
			sort.Ints(cand)
			if cand[len(cand)-1]-cand[0] <= maxSpan {
				out = append(out, cand)
			}
			return
		}
		for _, n := range options[depth] {
			combo[depth] = n
			walk(depth + 1)
		}
	}
	walk(0)
	return out
}

// movementCost pairs voices by index (the shorter voicing padded by
// repeating its top note), sums absolute semitone movement, and penalizes
// each parallel perfect fifth.
func movementCost(prev, curr []int) int {
	if len(prev) == 0 || len(curr) == 0 {
		return 0
	}
	n := len(prev)
	if len(curr) > n {
		n = len(curr)
	}
	a := pad(prev, n)
	b := pad(curr, n)

	cost := 0
	for i := 0; i < n; i++ {
		d := b[i] - a[i]
		if d < 0 {
			d = -d
		}
		cost += d
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if isFifth(a[i], a[j]) && isFifth(b[i], b[j]) && sameDirection(a[i], b[i], a[j], b[j]) {
				cost += parallelFifthPenalty
			}
		}
	}
	return cost
}

func pad(v []int, n int) []int {
	if len(v) >= n {
		return v
	}
	out := make([]int, n)
	copy(out, v)
	for i := len(v); i < n; i++ {
		out[i] = v[len(v)-1]
	}
	return out
}

func isFifth(low, high int) bool {
	d := high - low
	if d < 0 {
		d = -d
	}
	return d%12 == 7
}

func sameDirection(a1, b1, a2, b2 int) bool {
	d1, d2 := b1-a1, b2-a2
	return (d1 > 0 && d2 > 0) || (d1 < 0 && d2 < 0)
}
