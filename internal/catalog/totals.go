package catalog

// Instance is one occurrence of an item identity in a project.
type Instance struct {
	Project     string
	Quantity    int
	Requirement string
}

// ItemTotal aggregates everything the game asks for under one item
// identity, across all projects. TotalNeeded always equals the sum of the
// instance quantities.
type ItemTotal struct {
	TotalNeeded int
	Instances   []Instance
}

// completionReader is the slice of the state store the aggregation engine
// needs. The engine only ever reads completion flags; it never mutates
// state.
type completionReader interface {
	ItemCompleted(project, itemID string) bool
}

// rebuildTotals clears and repopulates the item total registry from the
// current catalog contents. Multi-requirement items contribute one
// instance per requirement token, under that token's identity.
func (c *Catalog) rebuildTotals() {
	c.totals = make(map[string]*ItemTotal)

	for _, project := range c.projects {
		for _, item := range project.Items {
			for _, token := range item.Requirements() {
				id := ItemID(item.Name, token)
				total, ok := c.totals[id]
				if !ok {
					total = &ItemTotal{}
					c.totals[id] = total
				}
				total.TotalNeeded += item.Quantity.Int()
				total.Instances = append(total.Instances, Instance{
					Project:     project.Name,
					Quantity:    item.Quantity.Int(),
					Requirement: token,
				})
			}
		}
	}
}

// RemainingFor returns how many of an item identity are still needed given
// the current completion state. Clamped at zero even when completed
// quantity exceeds the total (stale state after a data update).
func (c *Catalog) RemainingFor(itemID string, state completionReader) int {
	total, ok := c.totals[itemID]
	if !ok {
		return 0
	}

	completed := 0
	for _, inst := range total.Instances {
		if state.ItemCompleted(inst.Project, itemID) {
			completed += inst.Quantity
		}
	}

	if remaining := total.TotalNeeded - completed; remaining > 0 {
		return remaining
	}
	return 0
}
