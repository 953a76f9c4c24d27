// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"

	ilogging "github.com/ava-labs/eventqueue/internal/logging"
)

const loggerName = "eventqueue"

var (
	log logging.Logger = logging.NoLog{}

	logLevel string
	logDir   string

	rootCmd = &cobra.Command{
		Use:        "eventqueue",
		Short:      "Pending-event queue tools",
		SuggestFor: []string{"eventqueue", "event-queue"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		listCmd,
		holdCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		logging.Info.String(),
		"log level (verbo, debug, trace, info, warn, error, fatal, off)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logDir,
		"log-dir",
		"",
		"directory for rotated JSON logs (none if empty)",
	)
	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		level, err := ilogging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		c := ilogging.NewConfig(loggerName)
		c.Level = level
		c.Directory = logDir
		log, err = ilogging.New(c)
		return err
	}
	rootCmd.PersistentPostRun = func(*cobra.Command, []string) {
		log.Stop()
	}
	rootCmd.SilenceErrors = true

	initHold()
}

func Execute() error {
	return rootCmd.Execute()
}
