package catalog

import "sort"

// SummaryEntry is one project's contribution to an item's combined
// summary.
type SummaryEntry struct {
	Project     string
	Quantity    int
	Requirement string
	Completed   bool
}

// Summary aggregates an item across all projects by display name. This is
// coarser than the identity used for completion tracking: stations that
// share an item name fold into one row here.
type Summary struct {
	Name              string
	TotalQuantity     int
	CompletedQuantity int
	RemainingQuantity int
	Entries           []SummaryEntry
}

// RemainingAcrossAllProjects builds the combined "all items" view. An
// instance with several requirement tokens counts as completed only once
// every split identity is marked complete in its project. Non-keepable
// quest items never appear here at all.
func (c *Catalog) RemainingAcrossAllProjects(state completionReader) []Summary {
	byName := make(map[string]*Summary)
	var order []string

	for _, project := range c.projects {
		for _, item := range project.Items {
			if project.Quest && IsNonKeepable(item.Name) {
				continue
			}

			completed := true
			for _, token := range item.Requirements() {
				if !state.ItemCompleted(project.Name, ItemID(item.Name, token)) {
					completed = false
					break
				}
			}

			summary, ok := byName[item.Name]
			if !ok {
				summary = &Summary{Name: item.Name}
				byName[item.Name] = summary
				order = append(order, item.Name)
			}

			qty := item.Quantity.Int()
			summary.TotalQuantity += qty
			if completed {
				summary.CompletedQuantity += qty
			}
			summary.Entries = append(summary.Entries, SummaryEntry{
				Project:     project.Name,
				Quantity:    qty,
				Requirement: item.Requirement,
				Completed:   completed,
			})
		}
	}

	sort.Strings(order)

	summaries := make([]Summary, 0, len(order))
	for _, name := range order {
		summary := byName[name]
		if remaining := summary.TotalQuantity - summary.CompletedQuantity; remaining > 0 {
			summary.RemainingQuantity = remaining
		}
		summaries = append(summaries, *summary)
	}
	return summaries
}

// CompletedCount counts items whose completion flag is set. The special
// project name "all" makes the lookup follow each item's own carried
// project instead, so mixed-project lists from the combined view count
// correctly.
func CompletedCount(projectName string, items []Item, state completionReader) int {
	count := 0
	for _, item := range items {
		project := projectName
		if projectName == "all" {
			project = item.Project
		}
		if state.ItemCompleted(project, item.ID) {
			count++
		}
	}
	return count
}

// Percent returns done/total as a whole percentage, 0 for an empty total.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return done * 100 / total
}
