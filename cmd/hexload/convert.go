package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/mkeeler/hexload/convert"
	"github.com/mkeeler/hexload/random/delay"
	"github.com/mkeeler/hexload/spacedhex"
)

type convertCommand struct {
	ui          cli.Ui
	randSeed    int64
	callID      int
	maxDelay    int
	delayUnit   time.Duration
	noDelay     bool
	levelString string

	flags *flag.FlagSet
	help  string
}

func newConvertCommand(ui cli.Ui) cli.Command {
	c := &convertCommand{
		ui: ui,
	}

	flags := flag.NewFlagSet("", flag.ContinueOnError)

	flags.Int64Var(&c.randSeed, "seed", 0, "Value to seed the delay generator with instead of the current time")
	flags.IntVar(&c.callID, "id", 0, "Call identifier printed in the diagnostic line")
	flags.IntVar(&c.maxDelay, "max-delay", delay.DefaultMax, "Upper bound, exclusive, of the simulated delay in delay units")
	flags.DurationVar(&c.delayUnit, "delay-unit", delay.DefaultUnit, "Duration of one delay unit")
	flags.BoolVar(&c.noDelay, "no-delay", false, "Skip the simulated delay")
	flags.StringVar(&c.levelString, "log-level", hclog.Warn.String(), levelUsage())

	c.flags = flags
	c.help = genUsage(`Usage: hexload convert [OPTIONS] [TEXT]

	Convert text to space separated hex

	The text is taken from the arguments or, when none are given, read from
	standard input. The conversion blocks for a pseudo-random delay and prints
	a diagnostic line before the result.`, c.flags)

	return c
}

func (c *convertCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Error(fmt.Sprintf("Failed to parse command line arguments: %v", err))
		return 1
	}

	level, err := parseLevel(c.levelString)
	if err != nil {
		c.ui.Error(err.Error())
		return 1
	}

	data := strings.Join(c.flags.Args(), " ")
	if c.flags.NArg() == 0 {
		data, err = c.ui.Ask("Insert a string to be converted:")
		if err != nil {
			c.ui.Error(fmt.Sprintf("Error reading input: %v", err))
			return 1
		}
	}

	if c.randSeed == 0 {
		c.randSeed = time.Now().UnixNano()
	}

	opts := []convert.Option{
		convert.WithSeed(c.randSeed),
		convert.WithDiagnostics(uiWriter(c.ui.Output)),
		convert.WithLogger(newLogger("convert", level, c.ui)),
	}
	if c.noDelay {
		opts = append(opts, convert.WithoutDelay())
	} else {
		opts = append(opts, convert.WithDelay(0, c.maxDelay, c.delayUnit))
	}

	converter, err := convert.New(opts...)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error creating converter: %v", err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hex, _, err := converter.ConvertString(ctx, data, c.callID)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error converting input: %v", err))
		return 1
	}

	c.ui.Output(fmt.Sprintf("Original String: '%s'", data))
	c.ui.Output(fmt.Sprintf("Hex String: %s", hex))
	c.ui.Output(fmt.Sprintf("Length Check: Input (%d) vs Output (%d)", len(data), spacedhex.DecodedLen(len(hex))))
	return 0
}

func (c *convertCommand) Synopsis() string {
	return "Convert text to space separated hex"
}

func (c *convertCommand) Help() string {
	return c.help
}
