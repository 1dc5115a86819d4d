package calibrate

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Align returns the best-guess correspondence between the expected parameter
// names and the actual ones. The result is total over expected: every
// expected name is a key, mapped to the actual name chosen for it or to the
// empty string when nothing plausible was left.
//
// An actual name is bound at most once, and no actual name is assigned to two
// expected names. Actual names that find no open expected name are dropped;
// deciding whether that matters is the caller's business.
//
// Both phases iterate expected in slice order, so earlier-declared names win
// phase-one collisions and phase-two ties. Callers that need reproducible
// output must pass both slices in a stable order.
func Align(actual, expected []string) map[string]string {
	key := make(map[string]string, len(expected))
	for _, name := range expected {
		key[name] = ""
	}

	spellings := make([][]string, len(expected))
	for i, name := range expected {
		spellings[i] = Spellings(name)
	}

	assigned := make([]bool, len(expected))

	// Phase one: an actual name spelled exactly like one of the truncations
	// of a still-open expected name claims the first such name in order.
	var leftover []string
	for _, arg := range actual {
		bound := false
		for i, name := range expected {
			if assigned[i] {
				continue
			}
			if containsFold(spellings[i], arg) {
				key[name] = arg
				assigned[i] = true
				bound = true
				break
			}
		}
		if !bound {
			leftover = append(leftover, arg)
		}
	}

	// Phase two: everything left over goes to the open expected name it is
	// most similar to.
	for _, arg := range leftover {
		order := make([]int, len(expected))
		scores := make([]float64, len(expected))
		for i := range expected {
			order[i] = i
			scores[i] = bestShot(arg, spellings[i])
		}
		sort.SliceStable(order, func(a, b int) bool {
			return scores[order[a]] > scores[order[b]]
		})

		for _, i := range order {
			if !assigned[i] {
				key[expected[i]] = arg
				assigned[i] = true
				break
			}
		}
	}

	return key
}

// Spellings returns every spelling an implementer might plausibly have
// abbreviated name to: the name itself and each of its right truncations,
// longest first.
func Spellings(name string) []string {
	runes := []rune(name)
	out := make([]string, 0, len(runes))
	for i := len(runes); i > 0; i-- {
		out = append(out, string(runes[:i]))
	}
	return out
}

func containsFold(spellings []string, arg string) bool {
	for _, s := range spellings {
		if strings.EqualFold(s, arg) {
			return true
		}
	}
	return false
}

// bestShot returns the highest similarity ratio between word and any of the
// given spellings.
func bestShot(word string, spellings []string) float64 {
	best := 0.0
	for _, s := range spellings {
		if r := ratio(word, s); r > best {
			best = r
		}
	}
	return best
}

// ratio is the classic matching-blocks similarity of two strings in [0,1]:
// symmetric, case-insensitive and 1.0 for identical strings.
func ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func chars(s string) []string {
	s = strings.ToUpper(s)
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
