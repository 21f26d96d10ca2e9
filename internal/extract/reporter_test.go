package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Reporter:
// - Summarize counts entries and forms and finds the longest name
// - Longest-name ties keep the earlier name (strict > comparison)
// - Name length is measured in characters, not bytes
// - Sample orders entries by numeric id, not lexicographic
// - Sample stops after n entries; n = 0 disables it
// - Neither report mutates the mapping; repeated calls agree

func TestSummarize_CountsAndLongestName(t *testing.T) {
	t.Parallel()

	entries := EntryMap{
		"1": {{"", "Bulbasaur"}},
		"6": {{"", "Charizard"}, {"charizardmegax", "Charizard-Mega-X"}},
	}

	summary := Summarize(entries)

	assert.Equal(t, `pokemon entries: 2, total forms: 3, longest name: "Charizard-Mega-X"`, summary)
}

func TestSummarize_TieKeepsFirstSeen(t *testing.T) {
	t.Parallel()

	// Same length names; the entry with the lower numeric id is
	// encountered first and must win.
	entries := EntryMap{
		"2":  {{"", "Ivysaur"}},
		"10": {{"", "Weedle!"}},
	}

	summary := Summarize(entries)
	assert.Contains(t, summary, `longest name: "Ivysaur"`)
}

func TestSummarize_CharacterLengthNotBytes(t *testing.T) {
	t.Parallel()

	// "Flabébé" is 7 characters but 9 bytes; "Sandslash" is 9 of each.
	entries := EntryMap{
		"669": {{"", "Flabébé"}},
		"28":  {{"", "Sandslash"}},
	}

	summary := Summarize(entries)
	assert.Contains(t, summary, `longest name: "Sandslash"`)
}

func TestSummarize_EmptyMapping(t *testing.T) {
	t.Parallel()

	summary := Summarize(EntryMap{})
	assert.Equal(t, `pokemon entries: 0, total forms: 0, longest name: ""`, summary)
}

func TestSample_NumericOrder(t *testing.T) {
	t.Parallel()

	entries := EntryMap{
		"10": {{"", "Caterpie"}},
		"2":  {{"", "Ivysaur"}},
		"1":  {{"", "Bulbasaur"}},
	}

	sample := Sample(entries, 5)

	expected := "  1: :Bulbasaur\n" +
		"  2: :Ivysaur\n" +
		"  10: :Caterpie"
	assert.Equal(t, expected, sample)
}

func TestSample_LimitsToN(t *testing.T) {
	t.Parallel()

	entries := EntryMap{
		"1": {{"", "Bulbasaur"}},
		"2": {{"", "Ivysaur"}},
		"3": {{"", "Venusaur"}},
	}

	sample := Sample(entries, 2)

	assert.Contains(t, sample, "Bulbasaur")
	assert.Contains(t, sample, "Ivysaur")
	assert.NotContains(t, sample, "Venusaur")
}

func TestSample_ZeroDisables(t *testing.T) {
	t.Parallel()

	entries := EntryMap{"1": {{"", "Bulbasaur"}}}
	assert.Empty(t, Sample(entries, 0))
}

func TestReports_DoNotMutateMapping(t *testing.T) {
	t.Parallel()

	entries := EntryMap{
		"25": {{"", "Pikachu"}, {"pikachucosplay", "Pikachu-Cosplay"}},
		"26": {{"", "Raichu"}},
	}

	firstSummary := Summarize(entries)
	firstSample := Sample(entries, 5)

	assert.Equal(t, firstSummary, Summarize(entries))
	assert.Equal(t, firstSample, Sample(entries, 5))
	assert.Equal(t, []FormRecord{{"", "Pikachu"}, {"pikachucosplay", "Pikachu-Cosplay"}}, entries["25"])
}
