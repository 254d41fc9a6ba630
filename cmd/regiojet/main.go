package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ptomes1987/regiojet-delays/internal/regiojet"
)

var rootCmd = &cobra.Command{
	Use:           "regiojet",
	Short:         "Monitor RegioJet bus/train delays",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

var (
	langFlag      string
	limitFlag     int
	fromFlag      string
	toFlag        string
	thresholdFlag int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "cs", "Language code for API responses (cs, en, de, ...)")

	departuresCmd.Flags().IntVarP(&limitFlag, "limit", "n", regiojet.DefaultBoardLimit, "Maximum number of results")
	arrivalsCmd.Flags().IntVarP(&limitFlag, "limit", "n", regiojet.DefaultBoardLimit, "Maximum number of results")

	delaysCmd.Flags().StringVarP(&fromFlag, "from", "f", "KARLOVY_VARY_TERMINAL", "Origin station ID or alias")
	delaysCmd.Flags().StringVarP(&toFlag, "to", "t", "SOKOLOV_TERMINAL", "Destination station ID or alias")
	delaysCmd.Flags().IntVar(&thresholdFlag, "threshold", 0, "Only show routes delayed at least this many minutes")

	rootCmd.AddCommand(departuresCmd, arrivalsCmd, searchCmd, delaysCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
