package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/escaperoom/netstab/core"
	"github.com/escaperoom/netstab/puzzle"
)

// palette holds the console styles. With enabled unset every style renders
// plain text.
type palette struct {
	enabled bool

	denied  color.Style
	warning color.Style
	success color.Style
	subtle  color.Style
	link    color.Style
	status  color.Style
}

func newPalette(enabled bool) palette {
	return palette{
		enabled: enabled,
		denied:  color.Style{color.FgRed, color.OpBold},
		warning: color.Style{color.FgYellow, color.OpBold},
		success: color.Style{color.FgGreen, color.OpBold},
		subtle:  color.Style{color.FgGray},
		link:    color.Style{color.FgCyan},
		status:  color.Style{color.FgMagenta, color.OpBold},
	}
}

func (p palette) paint(s color.Style, text string) string {
	if !p.enabled {
		return text
	}

	return s.Sprint(text)
}

// verdictStyle maps a verdict to the feedback colour the console used:
// red for errors, orange-ish for low efficiency, green for success.
func (p palette) verdictStyle(v puzzle.Verdict) color.Style {
	switch v {
	case puzzle.VerdictSolved:
		return p.success
	case puzzle.VerdictSuboptimalCost:
		return p.warning
	default:
		return p.denied
	}
}

// linkLabel renders an edge as "#3 0-7".
func linkLabel(e core.Edge) string {
	return fmt.Sprintf("#%d %d-%d", e.ID, e.A, e.B)
}

// joinInts renders ints as "1, 2, 3".
func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ", ")
}

// joinLinks renders edge IDs as "#1, #2".
func joinLinks(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "#" + strconv.Itoa(id)
	}

	return strings.Join(parts, ", ")
}
