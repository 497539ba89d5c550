package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/airtable"
	"github.com/shubh-37/inflections-studio/internal/repository"
)

// newBrandsCommand lists active brands, which is the quickest way to check
// the record store credentials.
func newBrandsCommand(cc *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "brands",
		Short: "List active brands from the record store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cc.config
			if err := cfg.RequireAirtable(); err != nil {
				return err
			}

			store := airtable.NewClient(cfg.Airtable.APIURL, cfg.Airtable.Token, cfg.Airtable.BaseID, cc.logger)
			repo := repository.NewBrandRepository(store, cfg.Airtable.BrandsTable, cc.logger.Named("repository"))
			brands, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			cc.logger.Debug("brands loaded", zap.Int("count", len(brands)))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(brands)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSHORT\tTYPE")
			for _, b := range brands {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ID, b.Name, b.ShortName, b.BrandType)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print brands as JSON")
	return cmd
}
