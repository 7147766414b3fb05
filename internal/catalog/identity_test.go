package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Battery Cell", want: "battery-cell"},
		{name: "collapses punctuation runs", in: "Mk. II (Coil)", want: "mk-ii-coil"},
		{name: "trims leading and trailing separators", in: "  Wires  ", want: "wires"},
		{name: "keeps digits", in: "9mm Rounds", want: "9mm-rounds"},
		{name: "empty input", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}

func TestItemID_Deterministic(t *testing.T) {
	first := ItemID("Battery Cell", "Station X")
	second := ItemID("Battery Cell", "Station X")
	assert.Equal(t, first, second)
}

func TestItemID_DistinctRequirementsDistinctIDs(t *testing.T) {
	x := ItemID("Battery Cell", "Station X")
	y := ItemID("Battery Cell", "Station Y")

	assert.Equal(t, "battery-cell-station-x", x)
	assert.Equal(t, "battery-cell-station-y", y)
	assert.NotEqual(t, x, y)
}

func TestItemID_WithoutRequirement(t *testing.T) {
	assert.Equal(t, "battery-cell", ItemID("Battery Cell", ""))
	assert.Equal(t, "battery-cell", ItemID("Battery Cell", "   "))
}

func TestItemID_CollidesOnlyWhenSluggedFormsAreEqual(t *testing.T) {
	// Different raw text that slugs identically is an accepted collision.
	assert.Equal(t, ItemID("Battery Cell", "Station X"), ItemID("battery cell", "station-x"))
}

func TestGroupID(t *testing.T) {
	assert.Equal(t, "station-x", GroupID("Station X"))
}
