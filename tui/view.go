// Package tui implements the interactive palette preview.
package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wrap"

	"github.com/monkeypaint-cli/monkeypaint/color"
	"github.com/monkeypaint-cli/monkeypaint/icon"
	"github.com/monkeypaint-cli/monkeypaint/style"
	"github.com/monkeypaint-cli/monkeypaint/util"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(style.Title(strings.TrimSpace(icon.Get(icon.Keyboard) + " monkeypaint")))
	b.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		fmt.Fprintf(&b, "%s Fetching color schemes...\n", m.spinner.View())

	case stateFailed:
		b.WriteString(style.ErrorTitle("generation failed"))
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(wrap.String(m.err.Error(), util.Max(20, m.width-2)))
			b.WriteString("\n")
		}

	case stateReady:
		r := m.result
		fmt.Fprintf(
			&b, "%s base %s  %s  %s main, %s fn\n\n",
			style.Swatch(r.Base.String()),
			style.Bold(r.Base.String()),
			style.Faint(util.Quantify(r.Registry.Count(), "group", "groups")),
			style.Fg(color.Cyan)(r.Mode),
			style.Fg(color.Cyan)(r.FnMode),
		)

		for _, id := range r.Registry.Order() {
			main := r.MainPalette[id].String()
			fn := r.FnPalette[id].String()
			fmt.Fprintf(
				&b, "  %s %s  %s %s  %s\n",
				style.Swatch(main), main,
				style.Swatch(fn), fn,
				string(id),
			)
		}

		fmt.Fprintf(
			&b, "\n%s %s\n",
			style.Faint("destination:"),
			r.Destination,
		)
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}
