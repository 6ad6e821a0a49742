package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/de-tools/trackplot/pkg/models/domain"
)

// column is one table column sized to its widest cell.
type column struct {
	title string
	width int
	right bool
}

func (c column) cell(v string) string {
	if c.right {
		return fmt.Sprintf("%*s", c.width, v)
	}
	return fmt.Sprintf("%-*s", c.width, v)
}

// Reporter prints each report section as a summary followed by a boxed table
// of its details. Columns grow to fit the longest entry.
type Reporter struct {
	writer  io.Writer
	headers [4]string
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer:  writer,
		headers: [4]string{"Date", "Value", "Unit", "Details"},
	}
}

type tableSection struct {
	Title   string
	Summary []string
	Border  string
	Header  string
	Rows    []string
}

func (c *Reporter) layout(section domain.ReportSection) tableSection {
	cols := []column{
		{title: c.headers[0]},
		{title: c.headers[1], right: true},
		{title: c.headers[2]},
		{title: c.headers[3]},
	}
	cells := make([][]string, len(section.Details))
	for i, d := range section.Details {
		cells[i] = []string{d.Name, fmt.Sprintf("%v", d.Value), d.Unit, d.Description}
	}
	for i := range cols {
		cols[i].width = len(cols[i].title)
		for _, row := range cells {
			if n := len(row[i]); n > cols[i].width {
				cols[i].width = n
			}
		}
	}

	line := func(values []string) string {
		parts := make([]string, len(cols))
		for i, col := range cols {
			parts[i] = col.cell(values[i])
		}
		return "| " + strings.Join(parts, " | ") + " |"
	}
	dashes := make([]string, len(cols))
	for i, col := range cols {
		dashes[i] = strings.Repeat("-", col.width+2)
	}

	ts := tableSection{
		Title:  section.Title,
		Border: "+" + strings.Join(dashes, "+") + "+",
		Header: line([]string{cols[0].title, cols[1].title, cols[2].title, cols[3].title}),
	}
	for _, row := range cells {
		ts.Rows = append(ts.Rows, line(row))
	}

	keys := make([]string, 0, len(section.Summary))
	for k := range section.Summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		ts.Summary = append(ts.Summary, fmt.Sprintf("%s: %v", k, section.Summary[k]))
	}
	return ts
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}} ({{.Period.Duration}} days, {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}})
{{range .Sections}}
=== {{.Title}} ===
{{range .Summary}}  {{.}}
{{end}}{{if .Rows}}
{{.Border}}
{{.Header}}
{{.Border}}
{{range .Rows}}{{.}}
{{end}}{{.Border}}
{{end}}{{end}}`

	t, err := template.New("table").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	sections := make([]tableSection, len(report.Sections))
	for i, s := range report.Sections {
		sections[i] = c.layout(s)
	}
	return t.Execute(c.writer, struct {
		Title    string
		Period   domain.TimePeriod
		Sections []tableSection
	}{report.Title, report.Period, sections})
}
