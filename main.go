package httpie

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/HexmosTech/httpie-lite/config"
	"github.com/HexmosTech/httpie-lite/exchange"
	"github.com/HexmosTech/httpie-lite/flags"
	"github.com/HexmosTech/httpie-lite/input"
	"github.com/HexmosTech/httpie-lite/logging"
	"github.com/HexmosTech/httpie-lite/output"
	"github.com/HexmosTech/httpie-lite/version"
	"github.com/pkg/errors"
)

type Options struct {
	Args      []string  // including the program name; nil means os.Args
	Stdout    io.Writer // nil means os.Stdout
	Stderr    io.Writer // nil means os.Stderr
	ConfigDir string    // "" means config.DefaultDir()
}

func Main(options *Options) error {
	args := options.Args
	if args == nil {
		args = os.Args
	}
	stdout := options.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := options.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	configDir := options.ConfigDir
	if configDir == "" {
		configDir = config.DefaultDir()
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	// Parse flags
	flagSet, optionSet, err := flags.Parse(args, cfg, stdout)
	if err != nil {
		if flagSet != nil {
			flagSet.PrintUsage(stderr)
		}
		return err
	}
	if optionSet.ShowVersion {
		fmt.Fprintf(stdout, "%s %s\n", version.Name, version.Current())
		return nil
	}
	if optionSet.ShowLicense {
		version.PrintLicenses(stdout)
		return nil
	}

	logger := logging.New(stderr, logging.LevelFor(optionSet.Debug))
	logger.Debug("configuration loaded",
		"dir", configDir,
		"timeout", optionSet.ExchangeOptions.Timeout,
		"follow", optionSet.ExchangeOptions.FollowRedirects)

	// Parse positional arguments
	in, err := input.ParseArgs(flagSet.Args())
	if _, ok := errors.Cause(err).(*input.UsageError); ok {
		flagSet.PrintUsage(stderr)
		return err
	}
	if err != nil {
		return err
	}

	// Send request and receive response
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	client := exchange.NewClient(&optionSet.ExchangeOptions, logger)
	resp, err := exchange.Send(ctx, client, in, &optionSet.ExchangeOptions, logger)
	if err != nil {
		return err
	}

	// Print response
	writer := bufio.NewWriter(stdout)
	if err := output.Print(writer, resp, &optionSet.OutputOptions); err != nil {
		return err
	}
	return errors.Wrap(writer.Flush(), "writing response")
}
