package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/philipp01105/labellog/config"
	"github.com/philipp01105/labellog/logger"
	"github.com/philipp01105/labellog/registry"
)

// CLI is the command line of labellog.
type CLI struct {
	Config   string   `help:"TOML configuration file." short:"c" type:"existingfile"`
	Category string   `help:"Logger category (default: main)." short:"C"`
	Callee   string   `help:"Logger callee." short:"e"`
	Env      string   `help:"Environment name; \"prod\" disables colors." name:"env"`
	NoColor  bool     `help:"Disable colors." name:"no-color"`
	Level    string   `help:"Level of the emitted lines." short:"l" default:"info" enum:"silly,trace,debug,verbose,info,warn,error"`
	Message  []string `arg:"" optional:"" help:"Message to emit. Lines are read from stdin when empty."`
}

func run(args []string, stdin io.Reader, stdout io.Writer, exit func(int)) error {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("labellog"),
		kong.Description("Emit labeled, leveled log lines."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stdout),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	return cli.emit(stdin, stdout)
}

// emit builds the registry and writes the message, or every stdin line.
func (c *CLI) emit(stdin io.Reader, stdout io.Writer) error {
	cfg := &config.Config{}
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	reg := registry.New(cfg.RegistryConfig(stdout))
	cfg.Apply(reg)

	opts := cfg.Options()
	if c.Env != "" {
		opts.Environment = c.Env
	}
	if c.NoColor {
		opts.Colorize = registry.Bool(false)
	}

	log := reg.GetLabeledInstance(c.Category, c.Callee, opts)
	level := logger.ParseLevel(c.Level)

	if len(c.Message) > 0 {
		return log.Log(level, strings.Join(c.Message, " "))
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := log.Log(level, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}
