package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studydash/logger"
	"studydash/util"
)

func newSchemaCmd(opts *options) *cobra.Command {

	return &cobra.Command{
		Use:   "schema",
		Short: "Print the fields studies can be filtered on",
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			cfg, err := opts.load()
			if err != nil {
				return
			}

			logFile := util.OpenLog(opts.logPath, logMode)
			defer util.CloseLog(logFile)

			lgr := cfg.Log.New(logFile)
			ctx := logger.WithFields(cmd.Context(), "run", "schema")

			fields, total, err := cfg.API.New(lgr).Schema(ctx)
			if err != nil {
				return
			}

			out := cmd.OutOrStdout()
			for _, field := range fields {
				fmt.Fprintf(out, "%-24s %s\n", field.Name, field.Type)
			}
			fmt.Fprintf(out, "%d studies\n", total)
			return
		},
	}
}
