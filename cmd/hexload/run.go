package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/mkeeler/hexload/load"
	"github.com/mkeeler/hexload/metrics"
	"github.com/mkeeler/hexload/spacedhex"
)

type runCommand struct {
	ui          cli.Ui
	configPath  string
	randSeed    int64
	input       string
	quiet       bool
	timeout     time.Duration
	metricsPort int
	reportAddr  string
	levelString string

	flags *flag.FlagSet
	help  string
}

func newRunCommand(ui cli.Ui) cli.Command {
	c := &runCommand{
		ui: ui,
	}

	flags := flag.NewFlagSet("", flag.ContinueOnError)

	flags.BoolVar(&c.quiet, "quiet", false, "Whether to suppress the diagnostic line printed by every call")
	flags.Int64Var(&c.randSeed, "seed", 0, "Value to use to seed the pseudo-random number generator with instead of the current time")
	flags.StringVar(&c.configPath, "config", "", "Path to the configuration to use for the run. Without one, five native calls are made")
	flags.StringVar(&c.input, "input", "", "Text to convert, overriding the configured or generated input")
	flags.DurationVar(&c.timeout, "timeout", 5*time.Minute, "How long to let the calls run for")
	flags.IntVar(&c.metricsPort, "metrics-port", 0, "listening port for metrics path /metrics (default: disabled)")
	flags.StringVar(&c.reportAddr, "report-addr", "", "address to retrieve performance measurement (default: disabled)")
	flags.StringVar(&c.levelString, "log-level", hclog.Info.String(), levelUsage())

	c.flags = flags
	c.help = genUsage(`Usage: hexload run [OPTIONS]

	Measure conversion call overhead

	This command makes many concurrent hex conversion calls, each with its
	own seeded delay, and reports how long they took.`, c.flags)

	return c
}

func (c *runCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Error(fmt.Sprintf("Failed to parse command line arguments: %v", err))
		return 1
	}

	level, err := parseLevel(c.levelString)
	if err != nil {
		c.ui.Error(err.Error())
		return 1
	}

	conf := load.DefaultConfig()
	if c.configPath != "" {
		conf, err = load.ReadConfig(c.configPath)
		if err != nil {
			c.ui.Error(fmt.Sprintf("Error reading config: %v", err))
			return 1
		}
	}

	if c.input != "" {
		conf.Input = c.input
		conf.InputBytes = 0
	}

	if err := conf.Normalize(); err != nil {
		c.ui.Error(fmt.Sprintf("Error validating config: %v", err))
		return 1
	}

	if c.randSeed != 0 {
		conf.Seed = c.randSeed
	}
	if conf.Seed == 0 {
		conf.Seed = time.Now().UnixNano()
	}

	// wait for signal
	signalCh := make(chan os.Signal, 10)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM, syscall.SIGPIPE)
	defer signal.Stop(signalCh)

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	logger := newLogger("hexload", level, c.ui)
	ctx = hclog.WithContext(ctx, logger)

	var metricsServer *metrics.MetricsServer
	if c.metricsPort != 0 {
		listenAddr := "0.0.0.0:%d"
		metricsAddr := fmt.Sprintf(listenAddr, c.metricsPort)
		metricsServer = metrics.NewMetricsServer(metrics.ServerConfig{
			Addr: metricsAddr,
		})
		go func() {
			logger.Info("Starting Metric Server", "address", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
				logger.Error("error starting metric server", "error", err)
			}
		}()
	}

	go func() {
		shutdownMetricsServer := func() {
			if metricsServer != nil {
				metricsServer.Shutdown(context.Background())
			}
		}
		for {
			var sig os.Signal
			select {
			case s := <-signalCh:
				sig = s
			case <-ctx.Done():
				shutdownMetricsServer()
				return
			}

			switch sig {
			case syscall.SIGPIPE:
				continue
			default:
				logger.Info("Shutting down")
				shutdownMetricsServer()
				cancel()
				return
			}
		}
	}()

	var diagnostics io.Writer = uiWriter(c.ui.Output)
	if c.quiet {
		diagnostics = io.Discard
	}

	lg := load.NewLoadGenerator(logger, conf, metricsServer, diagnostics)

	start := time.Now()
	logger.Info("Load started", "seed", conf.Seed, "input", spacedhex.EncodeToString(lg.Input()))

	if err := lg.Run(ctx); err != nil {
		c.ui.Error(fmt.Sprintf("Error running load: %v", err))
		return 1
	}
	logger.Info("Load completed", "duration", time.Since(start))

	if metricsServer != nil && c.reportAddr != "" {
		if err := metrics.LoadReport(uiWriter(c.ui.Output), c.reportAddr, time.Since(start), lg.Implementations()...); err != nil {
			c.ui.Error(fmt.Sprintf("Error generating report: %v", err))
			return 1
		}
	}
	return 0
}

func (c *runCommand) Synopsis() string {
	return "Measure conversion call overhead"
}

func (c *runCommand) Help() string {
	return c.help
}
