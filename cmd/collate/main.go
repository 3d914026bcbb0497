// SPDX-License-Identifier: MIT

// Command collate aligns witness texts from the command line and serves the
// collation HTTP API.
//
//	collate align A.txt B.txt C.xml
//	collate serve --config lvcollate.yaml
//	collate version
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcollate/config"
)

var version = "0.1.0-dev"

// app carries what every subcommand needs after flag parsing.
type app struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
	klogFlags  *flag.FlagSet
}

func main() {
	a := &app{}
	root := a.rootCommand()
	err := root.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "collate",
		Short:         "Align and collate witness texts",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML or TOML config file")

	a.klogFlags = flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(a.klogFlags)
	_ = a.klogFlags.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{FileNameCharWidth: 16})
	root.PersistentFlags().AddGoFlagSet(a.klogFlags)

	root.AddCommand(a.alignCommand(), a.serveCommand(), versionCommand())

	return root
}

// setup loads .env, the config file and COLLATE_* overrides, then wires
// logging.
func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "load .env")
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if !cmd.Flags().Changed("v") && cfg.Log.Verbosity > 0 {
		_ = a.klogFlags.Set("v", strconv.Itoa(cfg.Log.Verbosity))
	}
	a.logger = slog.New(newKlogHandler())

	return nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "collate", version)
		},
	}
}
