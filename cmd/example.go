package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bvrgo/buyrent-calculator/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write a fully populated example parameter file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

func runExample(_ *cobra.Command, args []string) error {
	filename := "buyrent.example.yaml"
	if len(args) > 0 {
		filename = args[0]
	}

	params := config.NewInputParser().CreateExampleParams()
	if err := config.SaveParams(params, filename); err != nil {
		return err
	}
	fmt.Printf("Wrote %s. Edit it and run: buyrent -c %s\n", filename, filename)
	return nil
}
