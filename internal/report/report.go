package report

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/tobvie/gearlist/internal/catalog"
	"github.com/tobvie/gearlist/internal/state"
)

// Report is the renderable progress snapshot.
type Report struct {
	GeneratedAt time.Time
	Projects    []ProjectSection
	Combined    []catalog.Summary
}

// ProjectSection is one project's slice of the report.
type ProjectSection struct {
	Name        string
	Description string
	Done        int
	Total       int
	Percent     int
	Groups      []GroupSection
}

// GroupSection is one requirement group inside a project section.
type GroupSection struct {
	Name  string
	Items []ItemLine
}

// ItemLine is a single checklist row.
type ItemLine struct {
	Name     string
	Quantity int
	Done     bool
}

// Build assembles the report from the catalog and the current completion
// state.
func Build(c *catalog.Catalog, store *state.Store) *Report {
	r := &Report{GeneratedAt: time.Now()}

	for _, project := range c.Projects() {
		section := ProjectSection{
			Name:        project.Name,
			Description: project.Description,
		}

		for _, group := range c.GroupByRequirement(project.Items, project.Name) {
			gs := GroupSection{Name: group.Name}
			for _, item := range group.Items {
				done := store.ItemCompleted(project.Name, item.ID)
				gs.Items = append(gs.Items, ItemLine{
					Name:     item.Name,
					Quantity: item.Quantity.Int(),
					Done:     done,
				})
				section.Total++
				if done {
					section.Done++
				}
			}
			section.Groups = append(section.Groups, gs)
		}

		section.Percent = catalog.Percent(section.Done, section.Total)
		r.Projects = append(r.Projects, section)
	}

	for _, summary := range c.RemainingAcrossAllProjects(store) {
		if summary.RemainingQuantity > 0 {
			r.Combined = append(r.Combined, summary)
		}
	}

	return r
}

const markdownTemplate = `# Gear checklist
{{ if not .GeneratedAt.IsZero }}
_Generated {{ .GeneratedAt.Format "2006-01-02 15:04" }}_
{{ end }}
{{- range .Projects }}
## {{ .Name }} ({{ .Done }}/{{ .Total }}, {{ .Percent }}%)
{{- if .Description }}

{{ .Description }}
{{- end }}
{{- range .Groups }}

### {{ .Name | default "Ungrouped" }}

{{ range .Items -}}
- [{{ if .Done }}x{{ else }} {{ end }}] {{ .Name }}{{ if gt .Quantity 1 }} x{{ .Quantity }}{{ end }}
{{ end -}}
{{- end }}
{{- end }}

## Still needed everywhere

{{ if .Combined -}}
| Item | Remaining | Needed by |
| --- | --- | --- |
{{ range .Combined -}}
| {{ .Name }} | {{ .RemainingQuantity }} | {{ $entries := list }}{{ range .Entries }}{{ $entries = append $entries .Project }}{{ end }}{{ $entries | uniq | join ", " }} |
{{ end -}}
{{- else -}}
Nothing left. Well geared.
{{- end }}
`

// Render produces the markdown report.
func Render(r *Report) (string, error) {
	tmpl, err := template.New("report").Funcs(sprig.FuncMap()).Parse(markdownTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	return buf.String(), nil
}
