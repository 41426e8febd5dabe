// ABOUTME: Terminal report of a server status for the query command
// ABOUTME: Colored MOTD via lipgloss, player grid aligned with go-runewidth, optional glamour markdown

package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/echostatus/internal/i18n"
	"github.com/mauromedda/echostatus/internal/mcformat"
	"github.com/mauromedda/echostatus/internal/status"
)

const (
	defaultWidth = 80
	columnGap    = 2
)

// Options configures a Reporter.
type Options struct {
	// Renderer decides the color profile; nil uses lipgloss's default.
	Renderer *lipgloss.Renderer
	// Color enables glamour's styled output for markdown reports.
	Color       bool
	Lang        i18n.Lang
	Location    *time.Location
	PlayerLimit int
	Width       int
	// IconSize is the favicon width in cells; 0 hides it.
	IconSize int

	// PlayerFilter fuzzy-matches the player list when set.
	PlayerFilter string
}

// Reporter formats statuses for a terminal.
type Reporter struct {
	r     *lipgloss.Renderer
	motd  *mcformat.TerminalRenderer
	tr    *i18n.Translator
	opts  Options
	label lipgloss.Style
}

// New returns a Reporter for opts.
func New(opts Options) *Reporter {
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Lang == "" {
		opts.Lang = i18n.Default
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	return &Reporter{
		r:     opts.Renderer,
		motd:  mcformat.NewTerminalRenderer(opts.Renderer),
		tr:    i18n.New(opts.Lang),
		opts:  opts,
		label: opts.Renderer.NewStyle().Bold(true),
	}
}

type row struct {
	key   string
	value string
}

// rows lists the summary fields shown for s, skipping empty ones.
func (rep *Reporter) rows(s *status.Server) []row {
	tr := rep.tr
	rows := []row{
		{tr.Get("version"), mcformat.SanitizeTerminal(orNA(s.Version))},
		{tr.Get("players"), tr.FormatNumber(s.Players.Online) + " / " + tr.FormatNumber(s.Players.Max)},
	}
	add := func(key, value string) {
		if value != "" {
			rows = append(rows, row{tr.Get(key), mcformat.SanitizeTerminal(value)})
		}
	}
	add("software", s.Software)
	add("gamemode", s.Gamemode)
	add("map", s.Map)
	if s.Protocol != status.NotAvailable {
		add("protocol", s.Protocol)
	}
	if s.IP != s.Hostname {
		add("ip", s.IP)
	}
	add("port", strconv.Itoa(s.Port))
	add("lastQuery", tr.FormatTime(s.RetrievedAt, rep.opts.Location))
	return rows
}

// Text renders the full plain-terminal report.
func (rep *Reporter) Text(s *status.Server) string {
	tr := rep.tr
	var b strings.Builder

	if icon := rep.iconLines(s.Icon, rep.opts.IconSize); len(icon) > 0 {
		b.WriteString(strings.Join(icon, "\n"))
		b.WriteString("\n\n")
	}

	badge := status.BadgeFor(s.Online)
	badgeColor := lipgloss.Color("#55ff55")
	if !s.Online {
		badgeColor = lipgloss.Color("#ff5555")
	}
	b.WriteString(rep.r.NewStyle().Foreground(badgeColor).Render(badge.Icon + " " + tr.Get(badge.TextKey)))
	b.WriteString("  ")
	b.WriteString(rep.label.Render(mcformat.SanitizeTerminal(s.Address())))
	b.WriteString("\n\n")

	if s.MOTD.Raw == nil {
		b.WriteString(tr.Get("noDescription"))
		b.WriteString("\n\n")
	} else if len(s.MOTD.Raw) > 0 {
		b.WriteString(rep.motd.RenderLines(s.MOTD.Raw))
		b.WriteString("\n\n")
	}

	rows := rep.rows(s)
	keyWidth := 0
	for _, r := range rows {
		keyWidth = max(keyWidth, runewidth.StringWidth(r.key))
	}
	for _, r := range rows {
		b.WriteString(rep.label.Render(runewidth.FillRight(r.key, keyWidth)))
		b.WriteString("  ")
		b.WriteString(r.value)
		b.WriteByte('\n')
	}

	names := s.MatchPlayers(rep.opts.PlayerFilter, rep.opts.PlayerLimit)
	if len(names) > 0 {
		fmt.Fprintf(&b, "\n%s (%d/%d)\n", rep.label.Render(tr.Get("connectedPlayers")), len(names), len(s.Players.List))
		b.WriteString(PlayerGrid(names, rep.opts.Width))
	}
	return b.String()
}

// Markdown renders the report through glamour.
func (rep *Reporter) Markdown(s *status.Server) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if rep.opts.Color {
		style = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(rep.opts.Width))
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(rep.markdownSource(s))
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n ") + "\n", nil
}

// markdownSource builds the markdown document for s.
func (rep *Reporter) markdownSource(s *status.Server) string {
	tr := rep.tr
	var b strings.Builder

	badge := status.BadgeFor(s.Online)
	fmt.Fprintf(&b, "# %s\n\n**%s**\n\n", escapeMarkdown(s.Address()), tr.Get(badge.TextKey))

	if s.MOTD.Raw == nil || len(s.MOTD.Raw) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", tr.Get("serverDescription"))
		f := mcformat.NewFormatter(tr.Get("noDescription"))
		if s.MOTD.Raw == nil {
			fmt.Fprintf(&b, "> %s\n\n", escapeMarkdown(f.StripLines(nil)))
		}
		for _, line := range s.MOTD.Raw {
			fmt.Fprintf(&b, "> %s\n>\n", escapeMarkdown(mcformat.Strip(line)))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", tr.Get("serverInfo"))
	for _, r := range rep.rows(s) {
		fmt.Fprintf(&b, "- **%s**: %s\n", r.key, escapeMarkdown(r.value))
	}

	if names := s.MatchPlayers(rep.opts.PlayerFilter, rep.opts.PlayerLimit); len(names) > 0 {
		fmt.Fprintf(&b, "\n## %s\n\n", tr.Get("connectedPlayers"))
		for _, n := range names {
			fmt.Fprintf(&b, "- %s\n", escapeMarkdown(n))
		}
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "<", `\<`, "#", `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(mcformat.SanitizeTerminal(s))
}

// PlayerGrid lays names out in as many columns as fit in width. Cells are
// padded by display width so wide characters stay aligned. Escape sequences
// and control characters in names are dropped.
func PlayerGrid(names []string, width int) string {
	if len(names) == 0 {
		return ""
	}
	clean := make([]string, len(names))
	for i, n := range names {
		clean[i] = mcformat.SanitizeTerminal(n)
	}
	names = clean
	cell := 0
	for _, n := range names {
		cell = max(cell, runewidth.StringWidth(n))
	}
	cols := max(1, (width+columnGap)/(cell+columnGap))
	cols = min(cols, len(names))

	var b strings.Builder
	for i, n := range names {
		last := (i+1)%cols == 0 || i == len(names)-1
		if last {
			b.WriteString(n)
			b.WriteByte('\n')
			continue
		}
		b.WriteString(runewidth.FillRight(n, cell))
		b.WriteString(strings.Repeat(" ", columnGap))
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return status.NotAvailable
	}
	return s
}
