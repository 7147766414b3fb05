package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByRequirement_SplitsMultiRequirementItems(t *testing.T) {
	c := newTestCatalog(t)
	hideout, ok := c.Project("Hideout")
	require.True(t, ok)

	groups := c.GroupByRequirement(hideout.Items, "Hideout")
	require.Len(t, groups, 2)

	assert.Equal(t, "Station X", groups[0].Name)
	assert.Equal(t, "station-x", groups[0].ID)
	assert.Equal(t, "Station Y", groups[1].Name)

	// Battery Cell appears in both groups as independent copies.
	require.Len(t, groups[0].Items, 2)
	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, "battery-cell-station-x", groups[0].Items[0].ID)
	assert.Equal(t, "battery-cell-station-y", groups[1].Items[0].ID)

	// Each copy carries only its own requirement token.
	assert.Equal(t, "Station X", groups[0].Items[0].Requirement)
	assert.Equal(t, "Station Y", groups[1].Items[0].Requirement)
}

func TestGroupByRequirement_SplitCopiesCompleteIndependently(t *testing.T) {
	c := newTestCatalog(t)
	hideout, _ := c.Project("Hideout")
	groups := c.GroupByRequirement(hideout.Items, "Hideout")

	done := fakeState{"Hideout/battery-cell-station-x": true}

	assert.Equal(t, 1, CompletedCount("Hideout", groups[0].Items, done))
	assert.Equal(t, 0, CompletedCount("Hideout", groups[1].Items, done))
}

func TestGroupByRequirement_DropsAllNonKeepableQuestGroups(t *testing.T) {
	c := newTestCatalog(t)
	quests, ok := c.Project("Quests")
	require.True(t, ok)

	groups := c.GroupByRequirement(quests.Items, "Quests")

	// "Operation Dawn" holds only non-keepable items and is dropped;
	// "Supply Run" survives.
	require.Len(t, groups, 1)
	assert.Equal(t, "Supply Run", groups[0].Name)
}

func TestGroupByRequirement_KeepsMixedQuestGroups(t *testing.T) {
	fs := newTestCatalog(t)
	quests, _ := fs.Project("Quests")

	mixed := append([]Item(nil), quests.Items...)
	mixed = append(mixed, Item{Name: "Canteen", Requirement: "Operation Dawn", Project: "Quests"})

	groups := fs.GroupByRequirement(mixed, "Quests")
	require.Len(t, groups, 2)
	assert.Equal(t, "Operation Dawn", groups[0].Name)
	require.Len(t, groups[0].Items, 3)
}

func TestGroupByRequirement_NonQuestProjectKeepsEverything(t *testing.T) {
	c := newTestCatalog(t)

	items := []Item{
		{Name: "Encrypted Datapad", Requirement: "Station X", Project: "Hideout"},
	}

	groups := c.GroupByRequirement(items, "Hideout")
	require.Len(t, groups, 1)
}

func TestIsNonKeepable(t *testing.T) {
	assert.True(t, IsNonKeepable("Encrypted Datapad"))
	assert.False(t, IsNonKeepable("Canned Beans"))
}
