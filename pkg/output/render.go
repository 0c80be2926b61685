package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
)

// reportTimeLayout is the timestamp layout on REPORT output
const reportTimeLayout = "2006-01-02 15:04:05 MST"

// row is the populated columns of one element
type row struct {
	element Element
	columns []Column
}

// title is the first non-empty column value, falling back to the GUID
func (r row) title() string {
	for _, c := range r.columns {
		if s := formatValue(c.Value); s != "" {
			return s
		}
	}
	return r.element.GUID()
}

func renderDict(rows []row) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		m := make(map[string]any, len(r.columns))
		for _, c := range r.columns {
			m[c.Label()] = c.Value
		}
		out = append(out, m)
	}
	return out
}

func renderList(rows []row, spec FormatSpec) (string, error) {
	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))

	header := make([]string, 0, len(spec.Columns))
	for _, c := range spec.Columns {
		header = append(header, c.Label())
	}
	table.Header(header)

	for _, r := range rows {
		cells := make([]string, 0, len(r.columns))
		for _, c := range r.columns {
			cells = append(cells, tableCell(formatValue(c.Value)))
		}
		if err := table.Append(cells); err != nil {
			return "", fmt.Errorf("failed to add table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("failed to render table: %w", err)
	}
	return buf.String(), nil
}

// tableCell keeps a value on one markdown table line
func tableCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func renderMarkdown(rows []row, typeName string) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		fmt.Fprintf(&b, "# %s Name\n\n%s\n\n", typeName, r.title())
		for _, c := range r.columns {
			fmt.Fprintf(&b, "## %s\n\n%s\n\n", c.Label(), formatValue(c.Value))
		}
	}
	return b.String()
}

// renderForm writes one update form per element, ready to be edited and sent back
func renderForm(rows []row, typeName string) string {
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "# Update %s\n\n", typeName)
		hasGUID := false
		for _, c := range r.columns {
			if c.Key == "guid" {
				hasGUID = true
			}
			fmt.Fprintf(&b, "## %s\n\n%s\n\n", c.Label(), formatValue(c.Value))
		}
		if !hasGUID && r.element.GUID() != "" {
			fmt.Fprintf(&b, "## GUID\n\n%s\n\n", r.element.GUID())
		}
		b.WriteString("___\n\n")
	}
	return b.String()
}

func renderReport(rows []row, heading string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\nGenerated at %s\n\n", heading, now.Format(reportTimeLayout))
	for _, r := range rows {
		fmt.Fprintf(&b, "## %s\n\n", r.title())
		for _, c := range r.columns {
			value := formatValue(c.Value)
			if c.Format {
				fmt.Fprintf(&b, "**%s**\n\n%s\n\n", c.Label(), value)
				continue
			}
			fmt.Fprintf(&b, "**%s**: %s\n\n", c.Label(), value)
		}
		b.WriteString("---\n\n")
	}
	return b.String()
}

// renderMermaid emits the graphs the platform attached to each element. Elements
// without one get a flowchart linking them to their relationship-column neighbours.
func renderMermaid(rows []row) string {
	var b strings.Builder
	for i, r := range rows {
		graph := r.element.Mermaid()
		if graph == "" {
			graph = flowchart(r, i)
		}
		fmt.Fprintf(&b, "```mermaid\n%s\n```\n\n", strings.TrimRight(graph, "\n"))
	}
	return b.String()
}

func flowchart(r row, index int) string {
	var b strings.Builder
	root := fmt.Sprintf("e%d", index)
	b.WriteString("flowchart LR\n")
	fmt.Fprintf(&b, "    %s[\"%s\"]\n", root, mermaidLabel(r.title()))

	n := 0
	for _, c := range r.columns {
		names, ok := relatedQualifiedNames(r.element, c.Key)
		if !ok {
			continue
		}
		for _, name := range names {
			fmt.Fprintf(&b, "    %s -->|%s| %sr%d[\"%s\"]\n", root, mermaidLabel(c.Label()), root, n, mermaidLabel(name))
			n++
		}
	}
	return b.String()
}

func mermaidLabel(s string) string {
	s = strings.ReplaceAll(s, `"`, "#quot;")
	s = strings.ReplaceAll(s, "|", "#124;")
	return strings.ReplaceAll(s, "\n", " ")
}

// formatValue renders a column value as display text
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case []string:
		return strings.Join(t, relatedSeparator)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := formatValue(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, relatedSeparator)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	}
}
