package tui

import (
	"strings"

	"github.com/tobvie/gearlist/internal/catalog"
)

type rowKind int

const (
	rowGroup rowKind = iota
	rowItem
	rowSummary
)

// row is one selectable line of the active tab: a requirement-group
// header, an item inside a group, or a combined-view summary line.
type row struct {
	kind rowKind

	group     catalog.Group
	collapsed bool

	item    catalog.Item
	project string

	summary catalog.Summary
}

// buildProjectRows flattens a project's requirement groups into rows,
// applying the search filter and skipping the members of collapsed groups.
func (m *Model) buildProjectRows(project *catalog.Project) []row {
	items := filterItems(project.Items, m.search.Value())

	var rows []row
	for _, group := range m.catalog.GroupByRequirement(items, project.Name) {
		collapsed := m.store.GroupCollapsed(group.ID)
		rows = append(rows, row{kind: rowGroup, group: group, collapsed: collapsed})
		if collapsed {
			continue
		}
		for _, item := range group.Items {
			rows = append(rows, row{kind: rowItem, item: item, project: project.Name})
		}
	}
	return rows
}

// buildSummaryRows builds the combined "All Items" tab.
func (m *Model) buildSummaryRows() []row {
	query := normalize(m.search.Value())

	var rows []row
	for _, summary := range m.catalog.RemainingAcrossAllProjects(m.store) {
		if query != "" && !strings.Contains(normalize(summary.Name), query) {
			continue
		}
		rows = append(rows, row{kind: rowSummary, summary: summary})
	}
	return rows
}

func filterItems(items []catalog.Item, query string) []catalog.Item {
	query = normalize(query)
	if query == "" {
		return items
	}

	var filtered []catalog.Item
	for _, item := range items {
		if strings.Contains(normalize(item.Name), query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
