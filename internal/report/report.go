package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tidypath/internal/errors"
	"tidypath/internal/model"
)

// Styles used to highlight listings. They are bound to the renderer of the
// writer so plain output is produced when it cannot show color.
type Styles struct {
	Title   lipgloss.Style
	Keep    lipgloss.Style
	Removed lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles builds the listing styles for renderer r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Keep:    r.NewStyle().Foreground(lipgloss.Color("42")),
		Removed: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:     r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Quiet writes the rebuilt value followed by a newline.
func Quiet(w io.Writer, res model.Result) error {
	_, err := fmt.Fprintln(w, res.Value())
	return errors.WithStackTrace(err)
}

// Filtered lists the keepers with a 1-based counter, then the summary.
func Filtered(w io.Writer, st Styles, name string, res model.Result) error {
	var b strings.Builder
	writeHeader(&b, st, name)

	for i, seg := range res.Kept {
		fmt.Fprintf(&b, "%4d %s\n", i+1, seg)
	}

	writeSummary(&b, st, res)
	_, err := io.WriteString(w, b.String())
	return errors.WithStackTrace(err)
}

// All lists every entry with its code, highlighting entries that were
// removed, followed by the legend and the summary.
func All(w io.Writer, st Styles, name string, res model.Result) error {
	var b strings.Builder
	writeHeader(&b, st, name)

	for i, e := range res.Entries {
		if !e.Code.Valid() {
			return errors.NewInternalInvariantError(int(e.Code), e.Value)
		}

		line := fmt.Sprintf("%4d %d %s %s", i+1, e.Code, e.Code.Icon(), e.Value)
		if e.Kept() {
			b.WriteString(line)
		} else {
			b.WriteString(st.Removed.Render(line))
		}
		b.WriteString("\n")
	}

	writeLegend(&b, st)
	writeSummary(&b, st, res)
	_, err := io.WriteString(w, b.String())
	return errors.WithStackTrace(err)
}

func writeHeader(b *strings.Builder, st Styles, name string) {
	if name == "" {
		return
	}
	b.WriteString(st.Title.Render("Name: " + name))
	b.WriteString("\n")
}

func writeLegend(b *strings.Builder, st Styles) {
	b.WriteString("\n")
	b.WriteString(st.Title.Render("Legend:"))
	b.WriteString("\n")
	for c := model.Code(0); c.Valid(); c++ {
		line := fmt.Sprintf("    %d %s  %s", c, c.Icon(), c.Describe())
		if c == model.CodeKeep {
			b.WriteString(st.Keep.Render(line))
		} else {
			b.WriteString(st.Dim.Render(line))
		}
		b.WriteString("\n")
	}
}

func writeSummary(b *strings.Builder, st Styles, res model.Result) {
	b.WriteString("\n")
	b.WriteString(st.Title.Render("Summary:"))
	b.WriteString("\n")
	fmt.Fprintf(b, "    Original size : %3d\n", res.Original())
	fmt.Fprintf(b, "    Final size    : %3d\n", res.Final())
	fmt.Fprintf(b, "    Removed       : %3d\n", res.Removed())
}
