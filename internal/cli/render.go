package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ghaliela/cochrono/internal/browser"
	"github.com/ghaliela/cochrono/internal/i18n"
	"github.com/ghaliela/cochrono/internal/navigation"
	"github.com/ghaliela/cochrono/internal/storage"
	"github.com/ghaliela/cochrono/internal/timeline"
)

var (
	colorPrimary    = lipgloss.Color("#6366F1") // Indigo — labels, current crumb
	colorMuted      = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight = lipgloss.Color("#8C8C8C") // Lighter gray — descriptions
	colorYear       = lipgloss.Color("#D97706") // Amber — years
)

// printer writes command output either as styled text or as JSON.
type printer struct {
	w         io.Writer
	json      bool
	maxEvents int

	title  lipgloss.Style
	label  lipgloss.Style
	crumb  lipgloss.Style
	year   lipgloss.Style
	muted  lipgloss.Style
	detail lipgloss.Style
}

func newPrinter(w io.Writer, jsonOut, color bool, maxEvents int) *printer {
	re := lipgloss.NewRenderer(w)
	if !color {
		re.SetColorProfile(termenv.Ascii)
	}
	if maxEvents < 1 {
		maxEvents = 3
	}
	return &printer{
		w:         w,
		json:      jsonOut,
		maxEvents: maxEvents,
		title:     re.NewStyle().Bold(true),
		label:     re.NewStyle().Bold(true).Foreground(colorPrimary),
		crumb:     re.NewStyle().Foreground(colorPrimary),
		year:      re.NewStyle().Foreground(colorYear),
		muted:     re.NewStyle().Foreground(colorMuted),
		detail:    re.NewStyle().Foreground(colorMutedLight),
	}
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

// trail renders the breadcrumb bar with the index each crumb answers to
// in the back command.
func (p *printer) trail(crumbs []navigation.Breadcrumb) string {
	parts := []string{"⌂"}
	for i, c := range crumbs {
		text := fmt.Sprintf("%s [%d]", c.Label, i)
		if i == len(crumbs)-1 {
			parts = append(parts, p.label.Render(text))
		} else {
			parts = append(parts, p.crumb.Render(text))
		}
	}
	return strings.Join(parts, " › ")
}

// view renders the timeline screen.
func (p *printer) view(v *browser.View, tr *i18n.Translations) error {
	if p.json {
		return writeJSON(p.w, v)
	}

	p.println(p.trail(v.Trail))
	p.println(p.title.Render(v.Header))

	for _, blk := range v.Blocks {
		p.println("")
		p.printf("%d. %s %s\n", blk.Number, p.label.Render(blk.Label), p.muted.Render(fmt.Sprintf("(%d)", len(blk.Events))))

		if len(blk.Events) == 0 {
			p.printf("   %s\n", p.muted.Render(tr.T(i18n.KeyNoEvents)))
			continue
		}
		for i, e := range blk.Events {
			if i == p.maxEvents {
				p.printf("   %s\n", p.crumb.Render(fmt.Sprintf("+ %d %s", len(blk.Events)-p.maxEvents, tr.T(i18n.KeyMoreEvents))))
				break
			}
			p.eventLine("   ", e, tr)
		}
	}
	return nil
}

// eventLine prints one event card: year, title and ID, then the
// description when present.
func (p *printer) eventLine(indent string, e storage.Event, tr *i18n.Translations) {
	p.printf("%s%s  %s  %s\n", indent,
		p.year.Render(timeline.FormatYear(e.Year, tr)),
		p.title.Render(e.Title),
		p.muted.Render(e.ID),
	)
	if e.Description != "" {
		p.printf("%s  %s\n", indent, p.detail.Render(e.Description))
	}
}

// eventDetail renders the full detail of one event.
func (p *printer) eventDetail(d *browser.EventDetail, tr *i18n.Translations) error {
	if p.json {
		return writeJSON(p.w, d)
	}

	p.println(p.label.Render(d.Event.Title))
	p.printf("%s · %s\n", p.year.Render(d.FullDate), d.CategoryLabel)
	if d.Event.Description != "" {
		p.println("")
		p.println(d.Event.Description)
	}
	p.println("")
	p.println(p.title.Render(tr.T(i18n.KeyHistoricalCtx)))
	p.println(d.Context)
	if d.Event.Link != "" {
		p.println("")
		p.printf("%s: %s\n", tr.T(i18n.KeyReadArticle), d.Event.Link)
	}
	p.println("")
	p.println(p.muted.Render("ID: " + d.Event.ID))
	return nil
}
