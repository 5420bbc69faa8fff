package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studydash/query"
)

func newURLCmd(opts *options) *cobra.Command {

	var page, size int

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the listing url for --filter without requesting it",
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			cfg, err := opts.load()
			if err != nil {
				return
			}
			if size <= 0 {
				size = cfg.Layout.PageSize
			}

			req := query.NewRequest(size).
				WithFilter(query.Serialize(cfg.Layout.Filters)).
				WithPage(page)

			fmt.Fprintln(cmd.OutOrStdout(), req.URL(cfg.API.Base))
			return
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page")
	cmd.Flags().IntVarP(&size, "size", "s", 0, "page size, defaults to the layout's")

	return cmd
}
