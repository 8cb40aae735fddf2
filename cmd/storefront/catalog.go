// cmd/storefront/catalog.go
package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/internal/catalog"
)

var catalogSource string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load the configured catalog source once and print its items",
	Long: `Load the catalog the same way serve does and print it as a table.
Exits non-zero when the source cannot be fetched or decoded.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogSource, "source", "", "catalog location (overrides CATALOG_SOURCE)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if catalogSource != "" {
		cfg.CatalogSource = catalogSource
	}

	src, err := catalog.NewSource(cfg.CatalogSource, cfg.CatalogCollection, cfg.CatalogTable)
	if err != nil {
		return err
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	items, err := catalog.NewService(zap.NewNop()).Load(cmd.Context(), src)
	if err != nil {
		return err
	}

	return printItems(cmd.OutOrStdout(), items)
}

func printItems(out io.Writer, items []catalog.Item) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCOLOR")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", item.ID, item.Name, catalog.FormatPrice(item.Price), item.Color)
	}
	fmt.Fprintf(tw, "\t%d items\t\t\n", len(items))
	return tw.Flush()
}
