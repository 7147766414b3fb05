package catalog

import "sort"

// nonKeepable lists quest items that can never sit in the inventory
// (mission-only objects consumed on turn-in). Groups made up entirely of
// these are hidden, and the combined view skips them.
var nonKeepable = map[string]struct{}{
	"Encrypted Datapad":    {},
	"Field Surgery Kit":    {},
	"Forged Access Badge":  {},
	"Intercepted Manifest": {},
	"Prototype Detonator":  {},
	"Sabotage Charge":      {},
	"Sealed Court Summons": {},
	"Signal Decoder Key":   {},
	"Smuggled Ledger":      {},
	"Tracking Beacon":      {},
}

// IsNonKeepable reports whether an item name is in the fixed set of
// mission-only, non-inventory quest items.
func IsNonKeepable(name string) bool {
	_, ok := nonKeepable[name]
	return ok
}

// Group is the set of item copies sharing one requirement token within a
// project.
type Group struct {
	// Name is the requirement token; empty when items carry no
	// requirement.
	Name string

	// ID keys the group's collapse flag in the state store.
	ID string

	// Items are independent copies, each with its ID recomputed for this
	// group's requirement.
	Items []Item
}

// GroupByRequirement partitions items into requirement groups. An item
// listing several comma-separated requirements is split into one fully
// independent, separately completable copy per requirement.
//
// For the quest-item project, a group is dropped when every member is
// non-keepable; one keepable member keeps the group alive.
func (c *Catalog) GroupByRequirement(items []Item, projectName string) []Group {
	quest := c.isQuestProject(projectName)

	buckets := make(map[string][]Item)
	var order []string
	for _, item := range items {
		for _, token := range item.Requirements() {
			split := item
			split.Requirement = token
			split.ID = ItemID(item.Name, token)
			if _, seen := buckets[token]; !seen {
				order = append(order, token)
			}
			buckets[token] = append(buckets[token], split)
		}
	}
	sort.Strings(order)

	groups := make([]Group, 0, len(order))
	for _, token := range order {
		members := buckets[token]
		if quest && allNonKeepable(members) {
			continue
		}
		groups = append(groups, Group{
			Name:  token,
			ID:    GroupID(token),
			Items: members,
		})
	}
	return groups
}

func allNonKeepable(items []Item) bool {
	for _, item := range items {
		if !IsNonKeepable(item.Name) {
			return false
		}
	}
	return len(items) > 0
}
