package calibrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// -------------------- Spellings Tests --------------------

func TestSpellings(t *testing.T) {
	got := Spellings("origin")
	assert.Equal(t, []string{"origin", "origi", "orig", "ori", "or", "o"}, got)
}

func TestSpellingsSingleRune(t *testing.T) {
	assert.Equal(t, []string{"x"}, Spellings("x"))
}

// -------------------- Phase 1 (exact / prefix) Tests --------------------

func TestAlignIdentityPermutation(t *testing.T) {
	expected := []string{"identifier", "patience", "origin", "destination"}
	actual := []string{"destination", "origin", "identifier", "patience"}

	key := Align(actual, expected)
	for _, name := range expected {
		assert.Equal(t, name, key[name])
	}
}

func TestAlignEmptyActual(t *testing.T) {
	expected := []string{"row", "column"}

	key := Align(nil, expected)
	assert.Equal(t, map[string]string{"row": "", "column": ""}, key)
}

func TestAlignPrefixAbbreviation(t *testing.T) {
	// "orig" is a truncation of exactly one expected name; it must bind in
	// phase one and leave the other expected name empty.
	key := Align([]string{"orig"}, []string{"origin", "destination"})
	assert.Equal(t, "orig", key["origin"])
	assert.Equal(t, "", key["destination"])
}

func TestAlignCaseInsensitive(t *testing.T) {
	key := Align([]string{"ROW", "Col"}, []string{"row", "column"})
	assert.Equal(t, "ROW", key["row"])
	assert.Equal(t, "Col", key["column"])
}

func TestAlignPrefixFirstExpectedWins(t *testing.T) {
	// "d" abbreviates both expected names; the earlier-declared one claims it
	// and the follow-up falls through to similarity against the remaining
	// open name.
	key := Align([]string{"d", "dest"}, []string{"destination", "duration"})
	assert.Equal(t, "d", key["destination"])
	assert.Equal(t, "dest", key["duration"])
}

func TestAlignClaimedNameIsSkipped(t *testing.T) {
	// Once "row" is claimed, a second exact spelling must not overwrite it.
	key := Align([]string{"row", "row"}, []string{"row"})
	assert.Equal(t, map[string]string{"row": "row"}, key)
}

// -------------------- Phase 2 (similarity) Tests --------------------

func TestAlignSimilarityFallback(t *testing.T) {
	// Neither supplied name is a truncation of an expected name, so both go
	// through the similarity pass.
	key := Align([]string{"column_value", "row_value"}, []string{"row", "column"})
	assert.Equal(t, "row_value", key["row"])
	assert.Equal(t, "column_value", key["column"])
}

func TestAlignTieBreakEarlierExpectedWins(t *testing.T) {
	// "azz" scores identically against "axe" and "aye" (only the leading
	// rune matches, same lengths throughout the spelling sets), so the
	// earlier-declared expected name must receive it.
	assert.Equal(t, bestShot("azz", Spellings("axe")), bestShot("azz", Spellings("aye")))

	key := Align([]string{"azz"}, []string{"axe", "aye"})
	assert.Equal(t, "azz", key["axe"])
	assert.Equal(t, "", key["aye"])
}

func TestAlignInjectiveWhenPossible(t *testing.T) {
	expected := []string{"identifier", "patience", "origin", "destination"}
	actual := []string{"ident", "pat", "orgn", "destn"}

	key := Align(actual, expected)
	seen := map[string]bool{}
	for _, name := range expected {
		assert.NotEmpty(t, key[name])
		assert.False(t, seen[key[name]], "actual name %q assigned twice", key[name])
		seen[key[name]] = true
	}
}

func TestAlignSurplusActualDropped(t *testing.T) {
	key := Align([]string{"row", "extra"}, []string{"row"})
	assert.Equal(t, map[string]string{"row": "row"}, key)
}

func TestAlignDuplicateActualNames(t *testing.T) {
	// The second occurrence is processed independently; with its exact match
	// already claimed it lands on the best open name instead.
	key := Align([]string{"value", "value"}, []string{"value", "vector"})
	assert.Equal(t, "value", key["value"])
	assert.Equal(t, "value", key["vector"])
}

func TestAlignHopelessNamesStillAssignedInOrder(t *testing.T) {
	// All-zero similarity degenerates to declaration order. This pins down
	// the stable-sort behavior the dispatch layer depends on.
	key := Align([]string{"x", "y"}, []string{"foo", "bar"})
	assert.Equal(t, "x", key["foo"])
	assert.Equal(t, "y", key["bar"])
}

// -------------------- Ratio Tests --------------------

func TestRatioBounds(t *testing.T) {
	assert.Equal(t, 1.0, ratio("origin", "ORIGIN"))
	assert.Equal(t, 0.0, ratio("abc", "xyz"))
	r := ratio("row_value", "row")
	assert.Greater(t, r, 0.0)
	assert.Less(t, r, 1.0)
	assert.Equal(t, r, ratio("row", "row_value"))
}
