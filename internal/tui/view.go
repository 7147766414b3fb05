package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tobvie/gearlist/internal/catalog"
)

// View renders the checklist
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("gearlist"))
	b.WriteString("\n")

	if m.loadErr != nil {
		if errors.Is(m.loadErr, catalog.ErrNoCatalog) {
			b.WriteString(m.styles.Error.Render("No item data available. Run `gearlist fetch` or check the data directory."))
		} else {
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("Some item data failed to load: %v", m.loadErr)))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.search.Focused() || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	start, end := m.pager.GetSliceBounds(len(m.rows))
	if len(m.rows) == 0 {
		b.WriteString(m.styles.Subtle.Render("  nothing to show"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	if m.pager.TotalPages > 1 {
		b.WriteString("\n")
		b.WriteString("  " + m.pager.View())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("space toggle · / search · tab switch · t theme · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range m.tabs {
		if i == m.active {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return strings.Join(tabs, " ")
}

// renderHeader shows completion progress for the active tab.
func (m Model) renderHeader() string {
	name := m.tabs[m.active]
	if name == allTab {
		remaining := 0
		for _, r := range m.rows {
			if r.kind == rowSummary && r.summary.RemainingQuantity > 0 {
				remaining++
			}
		}
		return m.styles.Subtle.Render(fmt.Sprintf("%d item kinds still needed across all projects", remaining))
	}

	project, ok := m.catalog.Project(name)
	if !ok {
		return ""
	}

	var items []catalog.Item
	for _, group := range m.catalog.GroupByRequirement(project.Items, project.Name) {
		items = append(items, group.Items...)
	}
	done := catalog.CompletedCount(project.Name, items, m.store)

	return m.styles.Count.Render(fmt.Sprintf("%d/%d done (%d%%)", done, len(items), catalog.Percent(done, len(items))))
}

func (m Model) renderRow(i int) string {
	cursor := "  "
	if i == m.cursor {
		cursor = m.styles.Cursor.Render("› ")
	}

	switch r := m.rows[i]; r.kind {
	case rowGroup:
		marker := "▾"
		if r.collapsed {
			marker = "▸"
		}
		name := r.group.Name
		if name == "" {
			name = "Ungrouped"
		}
		return fmt.Sprintf("%s%s %s %s", cursor,
			m.styles.GroupHeader.Render(marker),
			m.styles.GroupHeader.Render(name),
			m.styles.Subtle.Render(fmt.Sprintf("(%d)", len(r.group.Items))))

	case rowItem:
		check := m.styles.Unchecked.Render("[ ]")
		nameStyle := m.styles.Unchecked
		if m.store.ItemCompleted(r.project, r.item.ID) {
			check = m.styles.Checked.Render("[x]")
			nameStyle = m.styles.Checked
		}

		line := fmt.Sprintf("%s  %s %s", cursor, check, nameStyle.Render(r.item.Name))
		if qty := r.item.Quantity.Int(); qty > 1 {
			line += " " + m.styles.Subtle.Render(fmt.Sprintf("x%d", qty))
		}
		if ref, ok := m.catalog.ReferenceFor(r.item.Name); ok && ref.Rarity != "" {
			line += " " + m.styles.Subtle.Render("· "+ref.Rarity)
		}
		return line

	case rowSummary:
		projects := make(map[string]struct{})
		for _, entry := range r.summary.Entries {
			projects[entry.Project] = struct{}{}
		}
		return fmt.Sprintf("%s%s %s %s", cursor,
			m.styles.Count.Render(fmt.Sprintf("%3d", r.summary.RemainingQuantity)),
			r.summary.Name,
			m.styles.Subtle.Render(fmt.Sprintf("(%d/%d, %d projects)", r.summary.CompletedQuantity, r.summary.TotalQuantity, len(projects))))
	}

	return ""
}
