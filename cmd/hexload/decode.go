package main

import (
	"flag"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/cli"
	"github.com/mkeeler/hexload/spacedhex"
)

type decodeCommand struct {
	ui    cli.Ui
	flags *flag.FlagSet
	help  string
}

func newDecodeCommand(ui cli.Ui) cli.Command {
	c := &decodeCommand{
		ui:    ui,
		flags: flag.NewFlagSet("", flag.ContinueOnError),
	}

	c.help = genUsage(`Usage: hexload decode HEX...

	Convert space separated hex back to text

	Arguments are joined with single spaces, so "hexload decode 48 69" and
	"hexload decode '48 69'" are equivalent. Output that is not valid UTF-8
	is printed as a quoted Go string.`, c.flags)

	return c
}

func (c *decodeCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Error(fmt.Sprintf("Failed to parse command line arguments: %v", err))
		return 1
	}

	if c.flags.NArg() == 0 {
		c.ui.Error("Must supply hex text to decode")
		return 1
	}

	decoded, err := spacedhex.DecodeString(strings.Join(c.flags.Args(), " "))
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error decoding input: %v", err))
		return 1
	}

	if utf8.Valid(decoded) {
		c.ui.Output(string(decoded))
	} else {
		c.ui.Output(fmt.Sprintf("%q", decoded))
	}
	return 0
}

func (c *decodeCommand) Synopsis() string {
	return "Convert space separated hex back to text"
}

func (c *decodeCommand) Help() string {
	return c.help
}
