package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	nt "studydash/entity"
	"studydash/logger"
	"studydash/query"
	"studydash/util"
)

func newListCmd(opts *options) *cobra.Command {

	var page, size int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of studies",
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			cfg, err := opts.load()
			if err != nil {
				return
			}
			if size <= 0 {
				size = cfg.Layout.PageSize
			}

			logFile := util.OpenLog(opts.logPath, logMode)
			defer util.CloseLog(logFile)

			lgr := cfg.Log.New(logFile)
			ctx := logger.WithFields(cmd.Context(), "run", "list")
			store := cfg.API.New(lgr)

			fields, _, err := store.Schema(ctx)
			if err != nil {
				return
			}

			req := query.NewRequest(size).
				WithFilter(query.Builder{Fields: fields}.Serialize(cfg.Layout.Filters)).
				WithPage(page)

			listing, err := store.GetPage(ctx, fields, req)
			if err != nil {
				return
			}

			headers, idxs := visible(cfg.Layout.Columns, fields)
			tbl := table.New().
				Border(lipgloss.NormalBorder()).
				Headers(headers...)
			for _, line := range listing.Lines {
				row := make([]string, len(idxs))
				for i, idx := range idxs {
					if idx < len(line) {
						row[i] = line[idx].String()
					}
				}
				tbl.Row(row...)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tbl.Render())
			fmt.Fprintf(out, "page %d/%d, %d matching\n", req.Page, req.Pages(listing.Total), listing.Total)
			return
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to print")
	cmd.Flags().IntVarP(&size, "size", "s", 0, "page size, defaults to the layout's")

	return cmd
}

// visible resolves configured columns to line positions, all fields when none are configured
func visible(columns []nt.Column, fields []nt.Field) (headers []string, idxs []int) {

	idxByName := map[string]int{}
	for i, field := range fields {
		idxByName[field.Name] = i
	}

	if len(columns) == 0 {
		for i, field := range fields {
			headers = append(headers, field.Name)
			idxs = append(idxs, i)
		}
		return
	}

	for _, col := range columns {
		idx, ok := idxByName[col.Field]
		if !ok {
			continue
		}
		headers = append(headers, col.Field)
		idxs = append(idxs, idx)
	}
	return
}
