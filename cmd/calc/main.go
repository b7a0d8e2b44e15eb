package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/ratio-calc/internal/application"
	"github.com/eugenenazirov/ratio-calc/internal/config"
	"github.com/eugenenazirov/ratio-calc/internal/logging"
)

var version = "dev"

func main() {
	kingpin.EnableFileExpansion = false
	kingpin.FatalIfError(run(os.Args[1:], os.Stdout), "")
}

type cli struct {
	app               *kingpin.Application
	configFile        *string
	displayDefault    *float64
	displayDefaultSet bool
	logLevel          *string
	logEncoding       *string
	operands          *[]string
}

func newCLI() *cli {
	c := &cli{
		app: kingpin.New("calc", "Ratio calculator - scales val by the ratio between an actual and a target reading"),
	}
	c.app.Version(version)
	c.configFile = c.app.Flag("config", "Path to YAML configuration file").String()
	c.displayDefault = c.app.Flag("display-default", "Target shown in the echo line when none is given").
		IsSetByUser(&c.displayDefaultSet).Float64()
	c.logLevel = c.app.Flag("log-level", "Log level (debug, info, warn, error)").String()
	c.logEncoding = c.app.Flag("log-encoding", "Log encoding (json or console)").String()
	c.operands = c.app.Arg("operands", "actual, target and val; missing or non-numeric values count as 0").Strings()
	return c
}

func (c *cli) overrides() *config.CLIOverrides {
	overrides := &config.CLIOverrides{
		ConfigFile:  *c.configFile,
		LogLevel:    c.logLevel,
		LogEncoding: c.logEncoding,
	}
	if c.displayDefaultSet {
		overrides.DisplayDefault = c.displayDefault
	}
	return overrides
}

func (c *cli) parse(args []string) error {
	if _, err := c.app.Parse(separateOperands(c.app, args)); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}
	return nil
}

func run(args []string, stdout io.Writer) error {
	c := newCLI()
	if err := c.parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(c.overrides())
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	return application.New(cfg, logger, stdout).Run(*c.operands)
}

// separateOperands places a "--" terminator before the first token that is
// not a known long flag, so kingpin reads everything from there on as an
// operand. Negative numbers and arbitrary strings therefore reach the
// calculator untouched. Flag values given as a separate token are folded
// into "--name=value".
func separateOperands(app *kingpin.Application, args []string) []string {
	out := make([]string, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		arg := args[i]

		var flag *kingpin.FlagClause
		name, _, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if strings.HasPrefix(arg, "--") && name != "" {
			flag = app.GetFlag(name)
		}
		if flag == nil {
			out = append(out, "--")
			return append(out, args[i:]...)
		}

		if hasValue || flag.Model().IsBoolFlag() || i+1 == len(args) {
			out = append(out, arg)
			continue
		}
		i++
		out = append(out, "--"+name+"="+args[i])
	}
	return out
}
