/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"strings"

	"github.com/alecthomas/kong"
	"github.com/device-management-toolkit/ifquery-go/internal/commands"
	"github.com/device-management-toolkit/ifquery-go/internal/config"
	"github.com/device-management-toolkit/ifquery-go/pkg/netif"
	"github.com/device-management-toolkit/ifquery-go/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Global flags that apply to all commands
type Globals struct {
	Config     string `help:"Path to configuration file" name:"config" type:"path" default:"ifquery.yaml"`
	LogLevel   string `help:"Set log level" default:"info" enum:"trace,debug,info,warn,error,fatal,panic"`
	JsonOutput bool   `help:"Output in JSON format" name:"json" short:"j"`
	Verbose    bool   `help:"Enable verbose logging" name:"verbose" short:"v"`
}

// CLI represents the complete command line interface
type CLI struct {
	Globals

	List    commands.ListCmd    `cmd:"list" help:"List the host's IPv4 network interfaces"`
	Version commands.VersionCmd `cmd:"version" help:"Display the current version of ifquery"`

	// Configuration loaded from YAML file (not directly accessible via CLI)
	FileConfig config.Config `kong:"-"`
}

// AfterApply applies global settings after flags are parsed
func (g *Globals) AfterApply(ctx *kong.Context) error {
	// Configure logging based on flags
	if g.Verbose {
		log.SetLevel(log.TraceLevel)
	} else {
		lvl, err := log.ParseLevel(g.LogLevel)
		if err != nil {
			log.Warn(err)
			log.SetLevel(log.InfoLevel)
		} else {
			log.SetLevel(lvl)
		}
	}

	// Configure log format
	if g.JsonOutput {
		log.SetFormatter(&log.JSONFormatter{
			DisableHTMLEscape: true,
		})
	} else {
		log.SetFormatter(&log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	return nil
}

// Parse creates a new Kong parser and parses the command line
func Parse(args []string) (*kong.Context, *CLI, error) {
	var cli CLI

	// Preliminary scan for --config
	configFile := utils.DefaultConfigName

	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			configFile = args[i+1]

			break
		} else if strings.HasPrefix(arg, "--config=") {
			configFile = strings.TrimPrefix(arg, "--config=")

			break
		}
	}

	log.Debugf("Using configuration file: %s", configFile)

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Error("Failed to read configuration: ", err)

		return nil, nil, utils.IncorrectCommandLineParameters
	}

	cli.FileConfig = cfg

	helpOpts := kong.HelpOptions{Compact: true}

	parser, err := kong.New(&cli,
		kong.Name(utils.ProjectName),
		kong.Description("Interface Query (IFQUERY) - lists the host's IPv4 network interfaces"),
		kong.UsageOnError(),
		kong.DefaultEnvars("IFQUERY"),
		kong.ConfigureHelp(helpOpts),
		kong.Resolvers(ConfigResolver(cfg)),
	)
	if err != nil {
		return nil, nil, err
	}

	// Slice off program name if present
	var parseArgs []string
	if len(args) > 1 {
		parseArgs = args[1:]
	} else {
		parseArgs = []string{}
	}

	ctx, perr := parser.Parse(parseArgs)
	if perr == nil {
		return ctx, &cli, nil
	}

	// Root invocation (no args) or errors unrelated to missing subcommand -> return error unchanged
	if len(parseArgs) == 0 || strings.Contains(perr.Error(), "unexpected argument") || strings.Contains(perr.Error(), "unknown flag") {
		return nil, nil, perr
	}

	// Only intercept classic missing subcommand scenario
	if strings.Contains(perr.Error(), "expected one of") {
		PrintHelp(parser, helpOpts, parseArgs)

		return nil, &cli, nil
	}

	return nil, nil, perr
}

// PrintHelp prints contextual help without invoking the help flag exit path.
func PrintHelp(parser *kong.Kong, opts kong.HelpOptions, args []string) error {
	ctx, err := kong.Trace(parser, args)
	if err != nil {
		return err
	}

	return kong.DefaultHelpPrinter(opts, ctx)
}

// Execute runs the parsed command against the platform's native enumerator
func Execute(args []string) error {
	return ExecuteWithEnumerator(args, netif.NewEnumerator())
}

// ExecuteWithEnumerator runs the parsed command with a provided enumerator (useful for testing)
func ExecuteWithEnumerator(args []string, enumerator netif.Enumerator) error {
	kctx, cli, err := Parse(args)
	if err != nil {
		return commandLineError(err)
	}

	// Create shared context
	appCtx := &commands.Context{
		Enumerator: enumerator,
		LogLevel:   cli.LogLevel,
		JsonOutput: cli.JsonOutput,
		Verbose:    cli.Verbose,
		Config:     cli.FileConfig,
	}

	// Execute the selected command
	if kctx == nil {
		return nil
	}

	return kctx.Run(appCtx)
}

// commandLineError maps parser failures onto the toolkit's exit code space.
func commandLineError(err error) error {
	if _, ok := err.(utils.CustomError); ok {
		return err
	}

	cmdErr := utils.IncorrectCommandLineParameters
	cmdErr.Details = err.Error()

	return cmdErr
}
