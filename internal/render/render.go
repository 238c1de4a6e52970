// Package render turns resolved entries into the rows of an ls-like listing
// and writes them as a themed terminal table or as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/fakeyudi/lsgit/internal/history"
)

// DefaultMaxNameWidth is the longest name printed without truncation.
const DefaultMaxNameWidth = 35

const (
	nameColumn    = 30
	summaryColumn = 50

	fileIcon = "\uf15b"
	dirIcon  = "\uf07b"
)

// Renderer writes rows to w.
type Renderer interface {
	Render(w io.Writer, rows []Row) error
}

// TableRenderer writes one aligned, themed line per row.
type TableRenderer struct {
	Theme        Theme
	MaxNameWidth int  // 0 means DefaultMaxNameWidth
	Color        bool // emit truecolor escape sequences
}

func (r *TableRenderer) Render(w io.Writer, rows []Row) error {
	lr := lipgloss.NewRenderer(w)
	if r.Color {
		lr.SetColorProfile(termenv.TrueColor)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	p := r.Theme.palette()
	// Inline keeps overlong cells on one line; Width pads short ones.
	nameStyle := lr.NewStyle().Foreground(p.name).Inline(true).Width(nameColumn)
	summaryStyle := lr.NewStyle().Foreground(p.summary).Inline(true).Width(summaryColumn)
	sinceStyle := lr.NewStyle().Foreground(p.since)

	width := r.MaxNameWidth
	if width <= 0 {
		width = DefaultMaxNameWidth
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, row := range rows {
		icon := fileIcon
		if row.Kind == history.Directory {
			icon = dirIcon
		}
		fmt.Fprintf(&sb, "%s %s %s %s\n",
			lr.NewStyle().Foreground(p.icon(row.Kind)).Render(icon),
			nameStyle.Render(Truncate(row.Name, width)),
			summaryStyle.Render(row.Summary),
			sinceStyle.Render(row.Since),
		)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// JSONRenderer writes the rows as an indented JSON array.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal rows: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Truncate shortens names longer than width runes to width-5 runes followed by
// "...".
func Truncate(name string, width int) string {
	runes := []rune(name)
	if width <= 5 || len(runes) <= width {
		return name
	}
	return string(runes[:width-5]) + "..."
}
