// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/eventqueue/factory"
	"github.com/ava-labs/eventqueue/hold"
	"github.com/ava-labs/eventqueue/utils"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List queue kinds by efficiency index",
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 0 {
			return ErrInvalidArgs
		}
		utils.Outf("{{bold}}%-12s %6s  %s{{/}}\n", "kind", "index", "behavior")
		for _, f := range factory.ByEfficiency[*hold.Event, float64](log) {
			utils.Outf(
				"{{cyan}}%-12s{{/}} %6.2f  %s\n",
				f.Kind(),
				f.EfficiencyIndex(),
				f.Behavior(),
			)
		}
		return nil
	},
}
