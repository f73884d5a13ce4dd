package taskhelp

import (
	"context"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	cellPadding     = "  "
	columnSeparator = " "
	nestingIndent   = "  "
	namespaceSep    = ":"
)

// HelpRow is one line of the help listing.
// Options holds the sub-rows for the task's options.
type HelpRow struct {
	Name        string // lookup key in the host registry
	Label       string // Name indented by its namespace depth
	Description string
	Options     []HelpRow
}

// Lister renders every task known to the host as a two-column table.
type Lister struct {
	host     Host
	describe func(*Task) Metadata
	cfg      Config
	collator *collate.Collator
}

// NewLister creates a Lister that reads tasks from the registrar's host and
// describes them with the registrar's metadata.
func NewLister(r *Registrar, cfg Config) *Lister {
	return &Lister{
		host:     r.Host(),
		describe: r.Describe,
		cfg:      cfg.WithDefaults(),
		collator: collate.New(language.Und),
	}
}

// Rows returns the help rows in display order.
// Names are sorted with locale collation and indented two spaces per ":".
// With HideEmpty, tasks without a description are left out along with their options.
func (l *Lister) Rows() ([]HelpRow, error) {
	tasks, err := l.host.Tasks()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sortNames(l.collator, names)

	rows := make([]HelpRow, 0, len(names))
	for _, name := range names {
		t, err := l.host.Task(name)
		if err != nil {
			return nil, err
		}
		md := l.describe(t)
		if md.Description == "" && l.cfg.HideEmpty {
			continue
		}

		margin := strings.Repeat(nestingIndent, strings.Count(name, namespaceSep))
		row := HelpRow{
			Name:        name,
			Label:       margin + name,
			Description: md.Description,
		}
		for _, o := range md.Options {
			row.Options = append(row.Options, HelpRow{
				Name:        o.Name,
				Label:       margin + nestingIndent + o.Name,
				Description: o.Usage,
			})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Render writes the usage header and the task table to w.
// Nothing is written if the host registry cannot be read.
func (l *Lister) Render(w io.Writer) error {
	rows, err := l.Rows()
	if err != nil {
		return err
	}

	buf := newBufferedOutput(&Output{Stdout: w})
	out := buf.Output()
	_, _ = out.Printf("Usage: %s [task]\n", l.cfg.Runner)
	_, _ = out.Println()
	_, _ = out.Println("Available Tasks")
	_, _ = out.Println(renderTable(rows, l.highlighter(w)))
	_, _ = out.Println()
	return buf.Flush()
}

// run is the body of the help task.
func (l *Lister) run(_ context.Context, done Done) error {
	if err := l.Render(l.cfg.Output); err != nil {
		return err
	}
	if l.cfg.Callback != nil {
		l.cfg.Callback(done)
		return nil
	}
	done()
	return nil
}

// highlighter returns the function used to tint task labels.
// Labels are tinted only when w is a terminal and color is enabled.
func (l *Lister) highlighter(w io.Writer) func(string) string {
	if l.cfg.NoColor || color.NoColor || !isTerminal(w) {
		return func(s string) string { return s }
	}
	cyan := color.New(color.FgCyan)
	return func(s string) string { return cyan.Sprint(s) }
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// sortNames sorts task names with c, usually the root locale collation.
// Names the collation considers equal fall back to byte order.
func sortNames(c *collate.Collator, names []string) {
	slices.SortFunc(names, func(a, b string) int {
		if r := c.CompareString(a, b); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	})
}

// tableLine is a row of the rendered table before padding.
type tableLine struct {
	label     string
	desc      string
	highlight bool
}

// renderTable lays rows out in two left-aligned columns without borders.
// Every cell is padded by two spaces on each side and the columns are joined
// by a single space. Widths are measured on the uncolored text.
func renderTable(rows []HelpRow, highlight func(string) string) string {
	var lines []tableLine
	for _, row := range rows {
		lines = append(lines, tableLine{label: row.Label, desc: row.Description, highlight: true})
		for _, opt := range row.Options {
			lines = append(lines, tableLine{label: opt.Label, desc: opt.Description})
		}
	}

	var labelWidth, descWidth int
	for _, line := range lines {
		labelWidth = max(labelWidth, runewidth.StringWidth(line.label))
		descWidth = max(descWidth, runewidth.StringWidth(line.desc))
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		label := line.label
		if line.highlight {
			label = highlight(label)
		}
		label += strings.Repeat(" ", labelWidth-runewidth.StringWidth(line.label))

		var b strings.Builder
		b.WriteString(cellPadding)
		b.WriteString(label)
		b.WriteString(cellPadding)
		b.WriteString(columnSeparator)
		b.WriteString(cellPadding)
		b.WriteString(runewidth.FillRight(line.desc, descWidth))
		b.WriteString(cellPadding)
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}
