package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobend/internal/engine"
	"github.com/alexiusacademia/gobend/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobend",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get())
		fmt.Println("Beam Bending Calculator, closed-form elastic beam theory")
		fmt.Println(engine.Disclaimer)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
