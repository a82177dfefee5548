package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"pbshist/internal/app"
	"pbshist/internal/shared/configs"
	"pbshist/internal/shared/svcerrors"

	"github.com/spf13/pflag"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0"

const usage = `Usage:
  pbshist [flags] <accounting_log>   print the hourly histogram of a PBS accounting log
  pbshist serve [flags]              serve histograms over HTTP

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	serve := len(args) > 0 && args[0] == "serve"
	if serve {
		args = args[1:]
	}

	flags := newFlagSet(serve)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return svcerrors.ExitCodeInvalidArgument
	}

	if showVersion, _ := flags.GetBool("version"); showVersion {
		fmt.Fprintf(stdout, "pbshist %s\n", version)
		return 0
	}

	configPath, _ := flags.GetString("config")
	cfg, err := configs.LoadConfig(configPath, flags)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return svcerrors.ExitCodeInvalidArgument
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize app: %v\n", err)
		return svcerrors.ExitCodeInternal
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serve {
		if err := application.Serve(ctx); err != nil {
			fmt.Fprintf(stderr, "Server failed: %v\n", err)
			return svcerrors.ExitCodeInternal
		}
		return 0
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return svcerrors.ExitCodeInvalidArgument
	}

	if err := application.Run(ctx, flags.Arg(0), stdout); err != nil {
		return reportError(stderr, err)
	}
	return 0
}

func newFlagSet(serve bool) *pflag.FlagSet {
	flags := pflag.NewFlagSet("pbshist", pflag.ContinueOnError)
	flags.SortFlags = false

	flags.StringP("config", "c", "", "YAML configuration file")
	flags.StringP("queue", "q", "*", "count only records of this queue (* for all)")
	flags.String("malformed-lines", "strict", "malformed line policy: strict or skip")
	flags.String("unknown-codes", "skip", "unknown event code policy: skip or count")
	flags.String("export-dir", "", "export JSON reports below this directory")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	if serve {
		flags.Int("port", 8080, "HTTP listen port")
	} else {
		flags.Bool("noratios", false, "don't show ratios")
		flags.Bool("nolegend", false, "don't show legend")
		flags.String("metrics-textfile", "", "write Prometheus metrics to this textfile after the run")
	}
	flags.BoolP("version", "v", false, "show version")
	return flags
}

// reportError prints err for the operator and maps it onto the process exit code.
func reportError(stderr io.Writer, err error) int {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		fmt.Fprintf(stderr, "pbshist: %v\n", err)
		return svcerrors.ExitCodeInternal
	}
	if svcErr.IsInternalError() {
		fmt.Fprintf(stderr, "pbshist: %s: %v\n", svcErr.Code, svcErr.Cause)
	} else {
		fmt.Fprintf(stderr, "pbshist: %s: %s\n", svcErr.Code, svcErr.Message)
	}
	return svcErr.ExitCode()
}
