package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/charmbracelet/lipgloss"

	"awesome-dragon.science/go/colourEnabler/internal/config"
	"awesome-dragon.science/go/colourEnabler/internal/plugin"
	"awesome-dragon.science/go/colourEnabler/pkg/event"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/terminal"
	"awesome-dragon.science/go/colourEnabler/pkg/log"
	"awesome-dragon.science/go/colourEnabler/pkg/surface"
	"awesome-dragon.science/go/colourEnabler/pkg/util"
	"awesome-dragon.science/go/colourEnabler/pkg/util/systemstats"
)

const commandPrefix = "/"

const helpText = `Lines are rendered as if set on a text surface. Commands:
  /help            show this text
  /format [name]   show or change the output format
  /raw             toggle printing the stored text instead of rendering it
  /stats           show processing and system statistics
  /quit            exit`

type app struct {
	log      *log.Logger
	hooks    *event.Manager
	plugin   *plugin.Plugin
	stats    *systemstats.Counter
	renderer *lipgloss.Renderer
	out      io.Writer
	output   config.OutputConfig

	format     transformer.Transformer
	formatName string
	raw        bool
}

func newApp(conf *config.Config, logger *log.Logger, out io.Writer, renderer *lipgloss.Renderer) (*app, error) {
	a := &app{
		log:      logger,
		hooks:    &event.Manager{},
		stats:    &systemstats.Counter{},
		renderer: renderer,
		out:      out,
		output:   conf.Output,
	}

	if err := a.setFormat(conf.Output.Format); err != nil {
		return nil, err
	}

	a.plugin = plugin.Load(a.hooks, logger.Child("plugin"), conf.Surface.RichText)

	return a, nil
}

func (a *app) setFormat(name string) error {
	var t transformer.Transformer
	if name == "terminal" {
		t = terminal.New(a.renderer)
	} else {
		var err error
		if t, err = a.output.Transformer(name); err != nil {
			return err
		}
	}

	a.format = t
	a.formatName = name

	return nil
}

// process runs a single line through a fresh surface and returns what should be printed
func (a *app) process(line string) string {
	s := surface.New(surface.UI, a.hooks)
	s.SetText(line)
	a.stats.Add(line, s.Text())

	if a.raw {
		return s.Text()
	}

	return s.Render(a.format)
}

func (a *app) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.out, format+"\n", args...)
}

// runCommand handles a line starting with commandPrefix. It returns true when the program should exit
func (a *app) runCommand(line string) bool {
	line = strings.TrimPrefix(line, commandPrefix)

	args, err := shlex.Split(line, true)
	if err != nil {
		a.log.Debugf("could not split %q, falling back to spaces: %s", line, err)
		args = util.CleanSplitOnSpace(line)
	}

	if len(args) == 0 {
		return false
	}

	switch strings.ToLower(args[0]) {
	case "help", "?":
		a.printf(helpText)
	case "format":
		if len(args) < 2 {
			a.printf("format is %s, available: %s", a.formatName, strings.Join(config.Formats(), ", "))
			break
		}

		if err := a.setFormat(args[1]); err != nil {
			a.printf("%s", err)
			break
		}

		a.printf("format set to %s", a.formatName)
	case "raw":
		a.raw = !a.raw
		a.printf("raw output %s", onOff(a.raw))
	case "stats":
		a.printf("%s", systemstats.GetStats(a.stats))
	case "quit", "exit":
		return true
	default:
		a.printf("unknown command %q, try %shelp", args[0], commandPrefix)
	}

	return false
}

// handleLine dispatches line to runCommand or process
func (a *app) handleLine(line string) bool {
	if strings.HasPrefix(line, commandPrefix) {
		return a.runCommand(line)
	}

	a.printf("%s", a.process(line))

	return false
}

func (a *app) close() {
	a.plugin.Unload()
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}
