/*
colourEnabler renders text the way a rich text surface with the colour enabler hooks attached would show it.

Text given as arguments is rendered and printed. Without arguments each line of stdin is rendered, or with
--interactive, lines are read from a prompt.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"awesome-dragon.science/go/colourEnabler/internal/config"
	"awesome-dragon.science/go/colourEnabler/internal/version"
	"awesome-dragon.science/go/colourEnabler/pkg/log"
)

var (
	configPath  = pflag.StringP("config", "c", "", "Sets the TOML configuration file to use")
	format      = pflag.StringP("format", "f", "", "Sets the output format, overriding the config file")
	interactive = pflag.BoolP("interactive", "i", false, "Read lines from an interactive prompt")
	logLevel    = pflag.StringP("log-level", "l", "", "Sets the minimum log level, overriding the config file")
	noColour    = pflag.Bool("no-colour", false, "Disable colour in terminal output. NO_COLOR is also respected")
	showVersion = pflag.BoolP("version", "V", false, "Print the version and exit")

	bootLogger = log.New(0, os.Stderr, "MAIN", log.INFO)
)

func main() {
	pflag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	conf, err := loadConfig()
	if err != nil {
		bootLogger.Critf("could not load config: %s", err)
	}

	renderer := lipgloss.NewRenderer(os.Stdout)
	if *noColour || termenv.EnvNoColor() {
		renderer.SetColorProfile(termenv.Ascii)
	}

	if *interactive {
		runInteractive(conf, renderer)
		return
	}

	logger := log.New(conf.LogFlags(), os.Stderr, "MAIN", conf.LogLevel())

	a, err := newApp(conf, logger, os.Stdout, renderer)
	if err != nil {
		logger.Critf("could not start: %s", err)
	}

	defer a.close()

	go func() {
		sig := <-signals()
		logger.Infof("caught signal %s, exiting", sig)
		os.Exit(0)
	}()

	if pflag.NArg() > 0 {
		a.handleLine(strings.Join(pflag.Args(), " "))
		return
	}

	if err := runLines(a, os.Stdin); err != nil {
		logger.Errorf("error while reading stdin: %s", err)
	}
}

func loadConfig() (*config.Config, error) {
	conf := config.Default()
	if *configPath != "" {
		var err error
		if conf, err = config.GetConfig(*configPath); err != nil {
			return nil, err
		}
	}

	if *format != "" {
		conf.Output.Format = *format
	}

	if *logLevel != "" {
		if _, err := log.ParseLevel(*logLevel); err != nil {
			return nil, err
		}

		conf.Log.Level = *logLevel
	}

	return conf, nil
}

func signals() <-chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, unix.SIGINT, unix.SIGTERM)

	return sigChan
}

// runLines handles every line read from r until it is exhausted or a command asks to quit
func runLines(a *app, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if a.handleLine(scanner.Text()) {
			return nil
		}
	}

	return scanner.Err()
}

func runInteractive(conf *config.Config, renderer *lipgloss.Renderer) {
	rl, err := readline.New("> ")
	if err != nil {
		bootLogger.Critf("could not create prompt: %s", err)
	}

	defer rl.Close()

	logger := log.New(conf.LogFlags(), rl.Stderr(), "MAIN", conf.LogLevel())

	a, err := newApp(conf, logger, rl.Stdout(), renderer)
	if err != nil {
		logger.Critf("could not start: %s", err)
	}

	defer a.close()

	go func() { sig := <-signals(); logger.Infof("caught signal %s", sig); rl.Close() }()

	a.printf("%s, %shelp for commands", version.String(), commandPrefix)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return
			}

			continue
		}

		if err != nil {
			return
		}

		if a.handleLine(line) {
			return
		}
	}
}
