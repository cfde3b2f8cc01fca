package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/route-guide/internal/state"
	uistate "github.com/atomicstack/route-guide/internal/ui/state"
	"github.com/atomicstack/route-guide/internal/walkthrough"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	glyphLocked   = "🔒"
	glyphComplete = "✓"
	glyphPartial  = "◐"
	glyphEmpty    = "○"

	progressBarWidth = 20
	filledBlock      = "█"
	emptyBlock       = "░"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.viewHelp()
	}
	m.syncViewport()
	lines := m.headerLines()
	if m.nav.View().Screen == uistate.ScreenStepDetails {
		lines = append(lines, m.stepDetailLines()...)
	} else {
		lines = append(lines, m.listLines()...)
	}
	bottom := m.bottomLines()
	lines = limitHeight(lines, m.height-len(bottom), m.width)
	lines = append(lines, bottom...)
	return renderLines(applyWidth(lines, m.width))
}

func (m *Model) headerLines() []styledLine {
	view := m.nav.View()
	switch view.Screen {
	case uistate.ScreenRouteSelection:
		done := 0
		for i := range m.nav.Routes.Items {
			if m.progress.Status(i) == state.StatusComplete {
				done++
			}
		}
		return []styledLine{
			{text: m.title + " · Route Guide", style: styles.Title},
			{text: fmt.Sprintf("Routes (%d/%d complete)", done, len(m.nav.Routes.Items)), style: styles.Subtitle},
			{},
		}
	case uistate.ScreenRouteDetails:
		route, ok := m.progress.Route(view.Route)
		if !ok {
			return nil
		}
		lines := []styledLine{{text: route.Name, style: styles.Title}}
		for _, line := range m.wrap(route.Description, 0) {
			lines = append(lines, styledLine{text: line, style: styles.Subtitle})
		}
		pct := m.progress.CompletionPercentage(view.Route)
		bar := fmt.Sprintf("%s  %d/%d steps", renderProgress(pct, progressBarWidth), route.CompletedCount(), route.StepCount())
		lines = append(lines, styledLine{text: bar, raw: true})
		if len(route.Prerequisites) > 0 {
			lines = append(lines, styledLine{
				text:  "Requires: " + strings.Join(route.Prerequisites, ", "),
				style: styles.Percent,
			})
		}
		return append(lines, styledLine{})
	case uistate.ScreenStepDetails:
		route, ok := m.progress.Route(view.Route)
		if !ok {
			return nil
		}
		step, ok := route.Step(view.Chapter, view.Step)
		if !ok {
			return nil
		}
		lines := []styledLine{}
		for _, line := range m.wrap(step.Description, 0) {
			lines = append(lines, styledLine{text: line, style: styles.Title})
		}
		status := styles.GlyphComplete.Render(glyphComplete + " COMPLETED")
		if !step.Completed {
			status = styles.GlyphPartial.Render(glyphEmpty + " PENDING")
		}
		chapter := route.Chapters[view.Chapter]
		context := styles.Subtitle.Render(fmt.Sprintf("%s · Chapter %d: %s", route.Name, chapter.Number, chapter.Name))
		lines = append(lines,
			styledLine{text: status, raw: true},
			styledLine{text: context, raw: true},
			styledLine{},
		)
		return lines
	}
	return nil
}

func (m *Model) bottomLines() []styledLine {
	lines := []styledLine{}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	footer := m.help.ShortHelpView(m.keys.shortHelpFor(m.nav.View().Screen))
	lines = append(lines, styledLine{}, styledLine{text: footer, raw: true})
	return lines
}

// maxVisibleItems returns the rows left for the list once header and bottom
// lines are placed, or -1 when the height is unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - len(m.headerLines()) - len(m.bottomLines())
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) listLines() []styledLine {
	switch m.nav.View().Screen {
	case uistate.ScreenRouteSelection:
		return m.routeLines()
	case uistate.ScreenRouteDetails:
		return m.stepLines()
	}
	return nil
}

func (m *Model) routeLines() []styledLine {
	level := m.nav.Routes
	if len(level.Items) == 0 {
		return []styledLine{{text: "(no routes)", style: styles.Info}}
	}
	start, end := window(level.ViewportOffset, len(level.Items), m.maxVisibleItems())
	lines := make([]styledLine, 0, end-start)
	for idx := start; idx < end; idx++ {
		item := level.Items[idx]
		status := m.progress.Status(idx)
		glyph, style := routeGlyph(status)
		label := fmt.Sprintf("%s %s (%.0f%%)", glyph, item.Label, m.progress.CompletionPercentage(idx))
		lines = append(lines, m.itemLine(label, style, idx == level.Cursor))
	}
	return lines
}

func (m *Model) stepLines() []styledLine {
	display := m.nav.Steps
	route, ok := m.progress.Route(m.nav.View().Route)
	if display == nil || !ok {
		return nil
	}
	if display.Len() == 0 {
		return []styledLine{{text: "(no chapters)", style: styles.Info}}
	}
	start, end := window(display.ViewportOffset, display.Len(), m.maxVisibleItems())
	lines := make([]styledLine, 0, end-start)
	for idx := start; idx < end; idx++ {
		row, _ := display.Row(idx)
		switch r := row.(type) {
		case uistate.HeaderRow:
			ch := route.Chapters[r.Chapter]
			text := fmt.Sprintf("  ═══ %d. %s ═══", ch.Number, ch.Name)
			if len(ch.Steps) == 0 {
				text += " (no steps)"
			}
			lines = append(lines, styledLine{text: text, style: styles.ChapterHeader})
		case uistate.StepRow:
			step, ok := route.Step(r.Chapter, r.Step)
			if !ok {
				continue
			}
			glyph, style := glyphEmpty, styles.Item
			if step.Completed {
				glyph, style = glyphComplete, styles.GlyphComplete
			}
			lines = append(lines, m.itemLine("  "+glyph+" "+step.Description, style, idx == display.Cursor))
		}
	}
	return lines
}

// itemLine builds a list entry. The selected entry is padded so its
// background spans the full width.
func (m *Model) itemLine(label string, style *lipgloss.Style, selected bool) styledLine {
	indicator := "▌"
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		style = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if selected && m.width > 0 {
		if pad := m.width - runewidth.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         style,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) stepDetailLines() []styledLine {
	step, ok := m.nav.OpenStep()
	if !ok {
		return nil
	}
	label := func(name, value string) styledLine {
		return styledLine{text: styles.DetailLabel.Render(name+": ") + value, raw: true}
	}
	body := func(text string, indent int) []styledLine {
		var out []styledLine
		for _, line := range m.wrap(text, indent) {
			out = append(out, styledLine{text: strings.Repeat(" ", indent) + line, style: styles.DetailBody})
		}
		return out
	}

	lines := []styledLine{label("Type", step.Kind.Label())}
	switch kind := step.Kind.(type) {
	case walkthrough.DelusionTrigger:
		lines = append(lines,
			label("Trigger", fmt.Sprintf("#%d", kind.Number)),
			label("Polarity", polarityStyle(kind.Polarity).Render(kind.Polarity.String())),
			label("Location", kind.Location),
		)
	case walkthrough.YesNoPrompts:
		for i, p := range kind.Prompts {
			lines = append(lines, styledLine{})
			numbered := body(fmt.Sprintf("%d. %s", i+1, p.Question), 0)
			lines = append(lines, numbered...)
			answer := "NO"
			if p.Answer {
				answer = "YES"
			}
			lines = append(lines, styledLine{text: "   Answer: " + styles.Answer.Render(answer), raw: true})
		}
	case walkthrough.GeneralInstruction:
		lines = append(lines, styledLine{}, styledLine{text: "Instructions:", style: styles.DetailLabel})
		lines = append(lines, body(kind.Instruction, 2)...)
	case walkthrough.Checkpoint:
		lines = append(lines, label("Save point", kind.SavePoint), styledLine{})
		lines = append(lines, styledLine{text: "Remember to save your game at this point!", style: styles.Neutral})
	}
	return lines
}

func (m *Model) viewHelp() string {
	entries := []struct {
		binding string
		desc    string
	}{
		{bindingKeys(m.keys.Up.Keys()), "Move up"},
		{bindingKeys(m.keys.Down.Keys()), "Move down"},
		{bindingKeys(m.keys.Confirm.Keys()), "Open route or step"},
		{bindingKeys(m.keys.Back.Keys()), "Go back"},
		{bindingKeys(m.keys.Toggle.Keys()), "Toggle step completion"},
		{bindingKeys(m.keys.Help.Keys()), "Toggle this help"},
		{bindingKeys(m.keys.Quit.Keys()), "Quit"},
	}
	lines := []string{styles.PopupTitle.Render("Help"), ""}
	for i, e := range entries {
		if i == 0 {
			lines = append(lines, styles.DetailLabel.Render("Navigation"))
		}
		if i == 4 {
			lines = append(lines, "", styles.DetailLabel.Render("Actions"))
		}
		lines = append(lines, "  "+runewidth.FillRight(e.binding, 12)+e.desc)
	}
	lines = append(lines, "", styles.DetailLabel.Render("Symbols"))
	legend := []struct {
		status state.RouteStatus
		desc   string
	}{
		{state.StatusComplete, "Completed"},
		{state.StatusEmpty, "Not started"},
		{state.StatusPartial, "Partially completed"},
		{state.StatusLocked, "Prerequisites not met"},
	}
	for _, l := range legend {
		glyph, style := routeGlyph(l.status)
		lines = append(lines, "  "+style.Render(runewidth.FillRight(glyph, 3))+l.desc)
	}
	lines = append(lines, "", styles.Info.Render("Press h or esc to close this help."))

	box := styles.Popup.Render(strings.Join(lines, "\n"))
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func bindingKeys(keys []string) string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return strings.Join(out, "/")
}

func routeGlyph(status state.RouteStatus) (string, *lipgloss.Style) {
	switch status {
	case state.StatusLocked:
		return glyphLocked, styles.GlyphLocked
	case state.StatusComplete:
		return glyphComplete, styles.GlyphComplete
	case state.StatusPartial:
		return glyphPartial, styles.GlyphPartial
	default:
		return glyphEmpty, styles.GlyphEmpty
	}
}

func polarityStyle(p walkthrough.Polarity) *lipgloss.Style {
	switch p {
	case walkthrough.PolarityPositive:
		return styles.Positive
	case walkthrough.PolarityNegative:
		return styles.Negative
	default:
		return styles.Neutral
	}
}

// renderProgress draws a fixed-width bar for pct in [0,100].
func renderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := styles.ProgressFilled.Render(strings.Repeat(filledBlock, filled)) +
		styles.ProgressEmpty.Render(strings.Repeat(emptyBlock, width-filled))
	return fmt.Sprintf("[%s] %3.0f%%", bar, pct)
}

// wrap splits text to the model width less indent. Unknown widths leave the
// text on one line.
func (m *Model) wrap(text string, indent int) []string {
	if text == "" {
		return nil
	}
	limit := m.width - indent
	if m.width <= 0 || limit < 10 {
		return []string{text}
	}
	return strings.Split(wordwrap.String(text, limit), "\n")
}

// window returns the [start,end) slice of total rows to show from offset.
func window(offset, total, maxVisible int) (int, int) {
	if maxVisible <= 0 || total <= maxVisible {
		return 0, total
	}
	start := offset
	if start < 0 {
		start = 0
	}
	if start+maxVisible > total {
		start = total - maxVisible
	}
	return start, start + maxVisible
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width terminal cells. Wide glyphs count as
// two cells.
func truncateText(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return runewidth.Truncate(text, 1, "")
	}
	return runewidth.Truncate(text, width, "…")
}
