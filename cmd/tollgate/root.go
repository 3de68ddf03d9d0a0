package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tollgate",
	Short: "Tollgate checks declarative hook policies for workflow engines",
	Long:  `Tollgate attaches validators and callbacks to an external workflow engine. This CLI statically checks policy files against a workflow outline before they ever reach a running host.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
