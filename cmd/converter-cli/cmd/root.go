// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "converter-cli" quotes conversions and runs converter plans against a
// local ledger.
package cmd

import (
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/convertervm/config"
)

type cli struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log logging.Logger
}

func NewRootCmd() *cobra.Command {
	c := &cli{log: logging.NoLog{}}
	cmd := &cobra.Command{
		Use:        "converter-cli",
		Short:      "Weighted reserve converter CLI",
		SuggestFor: []string{"converter-cli", "convertercli"},
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			c.log.Stop()
		},
	}

	cobra.EnablePrefixMatching = true
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a JSON config file")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level, overrides the config file")

	cmd.AddCommand(
		newQuoteCmd(),
		newRunCmd(c),
	)
	return cmd
}

func (c *cli) init() error {
	var b []byte
	if len(c.configPath) > 0 {
		var err error
		b, err = os.ReadFile(c.configPath)
		if err != nil {
			return err
		}
	}
	cfg, err := config.New(b)
	if err != nil {
		return err
	}
	if len(c.logLevel) > 0 {
		cfg.LogLevel, err = logging.ToLevel(c.logLevel)
		if err != nil {
			return err
		}
	}
	c.cfg = cfg

	c.log = newLogger(cfg)
	c.log.Debug("cli initialized",
		zap.Stringer("log-level", cfg.LogLevel),
		zap.String("database", cfg.DatabasePath),
		zap.Bool("metrics", cfg.MetricsEnabled),
	)
	return nil
}
