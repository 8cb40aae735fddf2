// cmd/storefront/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Shoe storefront with an in-memory cart",
	Long: `storefront serves a catalog of shoes loaded once from a static source
(JSON or YAML file, HTTP URL, or PostgreSQL table) together with a
per-visitor shopping cart kept in memory.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file to read before the environment (default .env)")
	rootCmd.AddCommand(serveCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
