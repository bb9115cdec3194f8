// Command netstab is a terminal console for the network stabilization
// puzzle: prune redundant links until the stations form a minimum-cost tree.
//
// Usage:
//
//	netstab [-config file.yaml] [-method kruskal|prim] [-locale en_US]
//	        [-no-color] [-cooldown 2s] [-solved] [-v 2]
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/plan-systems/klog"
	"golang.org/x/term"

	"github.com/escaperoom/netstab/config"
	"github.com/escaperoom/netstab/puzzle"
)

// flags are the command-line overrides applied on top of the config file.
type flags struct {
	configPath string
	method     string
	locale     string
	noColor    bool
	cooldown   time.Duration
	solved     bool
}

func main() {
	fset := flag.NewFlagSet("netstab", flag.ExitOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")

	var f flags
	fset.StringVar(&f.configPath, "config", "", "YAML config file")
	fset.StringVar(&f.method, "method", "", "MST method: kruskal or prim")
	fset.StringVar(&f.locale, "locale", "", "message catalogue, e.g. en_US")
	fset.BoolVar(&f.noColor, "no-color", false, "disable ANSI colours")
	fset.DurationVar(&f.cooldown, "cooldown", -1, "lockout after a rejected confirm")
	fset.BoolVar(&f.solved, "solved", false, "open the console as already stabilized")
	fset.Parse(os.Args[1:])

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          tty && !f.noColor,
	})

	err := run(f, os.Stdin, os.Stdout, tty)
	if err != nil {
		klog.Errorf("netstab: %v", err)
	}
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

// run loads settings, builds the session and serves the console until quit
// or EOF.
func run(f flags, in io.Reader, out io.Writer, tty bool) error {
	cfg, err := settings(f)
	if err != nil {
		return err
	}

	c, err := newConsole(cfg, out, tty)
	if err != nil {
		return err
	}
	if f.solved {
		c.sess.MarkSolved()
	}

	return c.run(in)
}

// settings merges the config file (or defaults) with flag overrides.
func settings(f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if f.method != "" {
		cfg.Method = f.method
	}
	if f.locale != "" {
		cfg.Locale = f.locale
	}
	if f.noColor {
		cfg.Color = false
	}
	if f.cooldown >= 0 {
		cfg.Cooldown = f.cooldown
	}

	return cfg, cfg.Validate()
}

// newConsole builds an initialised session for cfg. Colour and the prompt
// are only used when out is a terminal.
func newConsole(cfg config.Config, out io.Writer, tty bool) (*console, error) {
	sess, err := puzzle.NewSession(cfg.Table(),
		puzzle.WithMethod(cfg.Method),
		puzzle.WithHistoryLimit(cfg.HistoryLimit),
		puzzle.WithOnSolved(func(r puzzle.Report) {
			klog.V(1).Infof("netstab: network stabilized at load %d", r.Cost)
		}),
	)
	if err != nil {
		return nil, err
	}
	sess.Initialize()

	c := &console{
		sess:     sess,
		out:      out,
		msg:      loadCatalog(cfg.Locale),
		pal:      newPalette(cfg.Color && tty),
		cooldown: cfg.Cooldown,
		now:      time.Now,
	}
	if tty {
		c.prompt = "> "
	}

	return c, nil
}
