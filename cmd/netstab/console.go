package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/plan-systems/klog"

	"github.com/escaperoom/netstab/core"
	"github.com/escaperoom/netstab/puzzle"
)

// console is the terminal stand-in for the in-game puzzle panel: it reads
// commands line by line and prints feedback.
type console struct {
	sess *puzzle.Session
	out  io.Writer
	msg  *catalog
	pal  palette

	// prompt is printed before each command when non-empty.
	prompt string

	cooldown    time.Duration
	now         func() time.Time
	lockedUntil time.Time
}

// run prints the panel, then executes commands from in until quit or EOF.
func (c *console) run(in io.Reader) error {
	c.show()
	sc := bufio.NewScanner(in)
	for {
		if c.prompt != "" {
			fmt.Fprint(c.out, c.prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if !c.exec(sc.Text()) {
			return nil
		}
	}
}

// exec runs one command line. It returns false when the console should close.
func (c *console) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	klog.V(3).Infof("netstab: command %q %v", cmd, args)

	switch cmd {
	case "show", "ls":
		c.show()
	case "cut", "remove", "rm":
		c.cut(args)
	case "undo", "back":
		c.undo()
	case "reset":
		c.reset()
	case "confirm", "check":
		c.confirm()
	case "solve", "hint":
		c.hint()
	case "help", "?":
		c.println(c.msg.get("HELP"))
	case "quit", "exit", "q":
		return false
	default:
		c.println(c.pal.paint(c.pal.denied, c.msg.get("UNKNOWN_COMMAND", cmd)))
	}

	return true
}

func (c *console) show() {
	if c.sess.State() == puzzle.StateSolved {
		c.println(c.pal.paint(c.pal.success, c.msg.get("STATUS_SOLVED")))
	} else {
		c.println(c.pal.paint(c.pal.status, c.msg.get("STATUS_REDUNDANT")))
		c.println(c.msg.get("STATUS_PRUNE"))
	}

	view := c.sess.View()
	for _, s := range view.Edges {
		row := fmt.Sprintf("  %-4s %d-%d  %3d", "#"+strconv.Itoa(s.ID), s.A, s.B, s.Cost)
		if s.Active {
			c.println(c.pal.paint(c.pal.link, row))
		} else {
			c.println(c.pal.paint(c.pal.subtle, row+"  ("+c.msg.get("PRUNED_TAG")+")"))
		}
	}
	c.load()
}

func (c *console) cut(args []string) {
	if c.locked() {
		return
	}
	if len(args) != 1 {
		c.println(c.msg.get("NO_SUCH_LINK", strings.Join(args, " ")))
		return
	}
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || !c.sess.RemoveEdge(id) {
		c.println(c.msg.get("NO_SUCH_LINK", args[0]))
		return
	}
	e, _ := edgeByID(c.sess.Edges(), id)
	c.println(c.msg.get("PRUNED", linkLabel(e)))
	c.load()
}

func (c *console) undo() {
	if c.locked() {
		return
	}
	history := c.sess.View().History
	if !c.sess.UndoLastRemoval() {
		c.println(c.msg.get("NOTHING_TO_UNDO"))
		return
	}
	e, _ := edgeByID(c.sess.Edges(), history[len(history)-1])
	c.println(c.msg.get("RESTORED", linkLabel(e)))
	c.load()
}

func (c *console) reset() {
	if c.locked() || !c.sess.Reset() {
		return
	}
	c.println(c.msg.get("NETWORK_RESET"))
	c.load()
}

func (c *console) confirm() {
	if c.locked() {
		return
	}
	if now := c.now(); now.Before(c.lockedUntil) {
		wait := c.lockedUntil.Sub(now).Round(100 * time.Millisecond)
		c.println(c.pal.paint(c.pal.warning, c.msg.get("COOLDOWN", wait)))
		return
	}

	r := c.sess.Confirm()
	c.println(c.pal.paint(c.pal.verdictStyle(r.Verdict), c.feedback(r)))
	switch {
	case len(r.Unreached) > 0:
		c.println(c.pal.paint(c.pal.subtle, c.msg.get("UNREACHED", joinInts(r.Unreached))))
	case len(r.Cycle) > 0:
		c.println(c.pal.paint(c.pal.subtle, c.msg.get("LOOP", joinLinks(r.Cycle))))
	}
	if !r.Solved() && c.cooldown > 0 {
		c.lockedUntil = c.now().Add(c.cooldown)
	}
}

// feedback picks the panel message for a verdict.
func (c *console) feedback(r puzzle.Report) string {
	switch r.Verdict {
	case puzzle.VerdictDisconnected:
		return c.msg.get("ERR_DISCONNECTED")
	case puzzle.VerdictHasCycles:
		return c.msg.get("ERR_CYCLES")
	case puzzle.VerdictSuboptimalCost:
		return c.msg.get("EFFICIENCY_LOW", r.Cost)
	default:
		return c.msg.get("SUCCESS")
	}
}

func (c *console) hint() {
	c.println(c.msg.get("HINT", c.sess.MinimumWeight()))
	for _, e := range c.sess.Hint() {
		c.println(c.pal.paint(c.pal.success, fmt.Sprintf("  %s  %d", linkLabel(e), e.Cost)))
	}
}

// locked prints the solved banner and reports true once the puzzle is solved.
func (c *console) locked() bool {
	if c.sess.State() != puzzle.StateSolved {
		return false
	}
	c.println(c.pal.paint(c.pal.success, c.msg.get("LOCKED")))

	return true
}

func (c *console) load() {
	c.println(c.msg.get("LOAD", c.sess.ActiveTotalCost()))
}

func (c *console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func edgeByID(edges []core.Edge, id int) (core.Edge, bool) {
	if id < 0 || id >= len(edges) {
		return core.Edge{}, false
	}

	return edges[id], true
}
