package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escaperoom/netstab/config"
	"github.com/escaperoom/netstab/puzzle"
)

// fakeClock is a manually advanced time source.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestConsole(t *testing.T, cfg config.Config) (*console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := newConsole(cfg, &out, false)
	require.NoError(t, err)

	return c, &out
}

// script feeds lines to c.exec and returns everything printed.
func script(c *console, out *bytes.Buffer, lines ...string) string {
	out.Reset()
	for _, l := range lines {
		if !c.exec(l) {
			break
		}
	}

	return out.String()
}

func TestConsole_RunPrintsPanel(t *testing.T) {
	c, out := newTestConsole(t, config.Default())
	require.NoError(t, c.run(strings.NewReader("quit\nshow\n")))

	text := out.String()
	assert.Contains(t, text, "SYSTEM STATUS: Redundant Connections Detected.")
	assert.Contains(t, text, "Prune the network to stabilize the signal.")
	assert.Contains(t, text, "#3   0-7   95")
	assert.Equal(t, 1, strings.Count(text, "Load: 595"), "show after quit must not run")
	assert.NotContains(t, text, "\x1b[", "no colour without a terminal")
}

func TestConsole_CutUndoReset(t *testing.T) {
	c, out := newTestConsole(t, config.Default())

	text := script(c, out, "cut 3", "remove #2")
	assert.Contains(t, text, "Link #3 0-7 pruned.")
	assert.Contains(t, text, "Load: 500")
	assert.Contains(t, text, "Load: 450")

	text = script(c, out, "undo")
	assert.Contains(t, text, "Link #2 0-4 restored.")
	assert.Contains(t, text, "Load: 500")

	text = script(c, out, "cut 3", "cut x", "cut", "cut 99")
	assert.Equal(t, 4, strings.Count(text, "No active link"))

	text = script(c, out, "reset", "back")
	assert.Contains(t, text, "All links restored.")
	assert.Contains(t, text, "Load: 595")
	assert.Contains(t, text, "Nothing to undo.")

	text = script(c, out, "show")
	assert.NotContains(t, text, "(pruned)")
}

func TestConsole_ConfirmFeedback(t *testing.T) {
	c, out := newTestConsole(t, config.Default())

	text := script(c, out, "confirm")
	assert.Contains(t, text, "Error: Cycles Detected")
	assert.Contains(t, text, "Redundant loop through links:")

	text = script(c, out, "cut 3", "cut 11", "cut 13", "cut 14", "check")
	assert.Contains(t, text, "Error: Network Disconnected")
	assert.Contains(t, text, "Unreachable stations: 7")

	text = script(c, out, "reset", "cut 1", "cut 2", "cut 3", "cut 5", "cut 8", "cut 10", "cut 13", "cut 14", "confirm")
	assert.Contains(t, text, "Efficiency Low. Current: 200")

	text = script(c, out, "undo", "cut 11", "confirm")
	assert.Contains(t, text, "SUCCESS! System Stabilized.")
	assert.Equal(t, puzzle.StateSolved, c.sess.State())

	text = script(c, out, "cut 0", "undo", "reset", "confirm")
	assert.Equal(t, 4, strings.Count(text, "Console locked"))
	assert.Equal(t, int64(185), c.sess.ActiveTotalCost())

	text = script(c, out, "show")
	assert.Contains(t, text, "SYSTEM STABILIZED (SOLVED)")
}

func TestConsole_Cooldown(t *testing.T) {
	cfg := config.Default()
	cfg.Cooldown = 2 * time.Second
	c, out := newTestConsole(t, cfg)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	c.now = clock.now

	text := script(c, out, "confirm", "confirm")
	assert.Contains(t, text, "Error: Cycles Detected")
	assert.Contains(t, text, "Recalibrating. Try again in 2s.")
	assert.Equal(t, 1, c.sess.Attempts())

	clock.advance(1500 * time.Millisecond)
	text = script(c, out, "confirm")
	assert.Contains(t, text, "Try again in 500ms.")

	clock.advance(time.Second)
	text = script(c, out, "confirm")
	assert.Contains(t, text, "Error: Cycles Detected")
	assert.Equal(t, 2, c.sess.Attempts())
}

func TestConsole_Hint(t *testing.T) {
	c, out := newTestConsole(t, config.Default())
	text := script(c, out, "solve")
	assert.Contains(t, text, "Optimal backbone (load 185):")
	assert.Contains(t, text, "#14 6-7  45")
	assert.Equal(t, int64(595), c.sess.ActiveTotalCost())
}

func TestConsole_HelpAndUnknown(t *testing.T) {
	c, out := newTestConsole(t, config.Default())
	text := script(c, out, "help", "dance", "", "exit", "help")
	assert.Equal(t, 1, strings.Count(text, "Commands:"))
	assert.Contains(t, text, `Unknown command "dance".`)
}

func TestConsole_Locale(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = "de_DE"
	c, out := newTestConsole(t, cfg)

	text := script(c, out, "confirm", "help")
	assert.Contains(t, text, "Fehler: Zyklen erkannt")
	// de_DE has no help text; en_US fills in.
	assert.Contains(t, text, "Commands:")

	cfg.Locale = "xx_XX"
	c, out = newTestConsole(t, cfg)
	assert.Contains(t, script(c, out, "confirm"), "Error: Cycles Detected")
}

func TestCatalog_Get(t *testing.T) {
	en := loadCatalog(config.DefaultLocale)
	assert.Equal(t, "Load: 5", en.get("LOAD", 5))
	assert.Equal(t, "Error: Cycles Detected", en.get("ERR_CYCLES"))
	assert.Contains(t, en.get("HELP"), "Commands:")
	assert.Equal(t, "NO_SUCH_KEY", en.get("NO_SUCH_KEY"))

	de := loadCatalog("de_DE")
	assert.Equal(t, "Last: 5", de.get("LOAD", 5))
	assert.Contains(t, de.get("HELP"), "Commands:")
}

func TestRun_SolvedFlagAndConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netstab.yaml")
	body := "nodes: 3\nedges: [{a: 0, b: 1, cost: 4}, {a: 1, b: 2, cost: 1}, {a: 0, b: 2, cost: 2}]\nmethod: prim\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	var out bytes.Buffer
	err := run(flags{configPath: path, cooldown: -1, solved: true}, strings.NewReader("confirm\n"), &out, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "SYSTEM STABILIZED (SOLVED)")
	assert.Contains(t, out.String(), "Load: 3")
	assert.Contains(t, out.String(), "Console locked")
}

func TestSettings_Overrides(t *testing.T) {
	cfg, err := settings(flags{method: "prim", locale: "de_DE", noColor: true, cooldown: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "prim", cfg.Method)
	assert.Equal(t, "de_DE", cfg.Locale)
	assert.False(t, cfg.Color)
	assert.Equal(t, time.Second, cfg.Cooldown)

	_, err = settings(flags{method: "boruvka", cooldown: -1})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = settings(flags{configPath: filepath.Join(t.TempDir(), "nope.yaml"), cooldown: -1})
	assert.ErrorIs(t, err, config.ErrReadConfig)
}
