package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bvrgo/buyrent-calculator/internal/config"
	"github.com/bvrgo/buyrent-calculator/internal/output"
	"github.com/bvrgo/buyrent-calculator/internal/store"
	"github.com/bvrgo/buyrent-calculator/internal/wizard"
)

var (
	flagWizardOutput string
	flagWizardSaveAs string
	flagWizardRun    bool
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Build a parameter file interactively",
	RunE:  runWizard,
}

func init() {
	wizardCmd.Flags().StringVarP(&flagWizardOutput, "output", "o", "buyrent.yaml", "Where to write the parameter file")
	wizardCmd.Flags().StringVar(&flagWizardSaveAs, "save-preset", "", "Also store the parameters as a named preset")
	wizardCmd.Flags().BoolVar(&flagWizardRun, "run", false, "Run the projection immediately after the wizard")
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(_ *cobra.Command, _ []string) error {
	params, err := wizard.Run()
	if err != nil {
		return err
	}

	if err := config.SaveParams(params, flagWizardOutput); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", flagWizardOutput)

	if flagWizardSaveAs != "" {
		db, err := store.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		if err := db.SavePreset(flagWizardSaveAs, params); err != nil {
			return err
		}
		fmt.Printf("Saved preset %q\n", flagWizardSaveAs)
	}

	if flagWizardRun {
		result := newEngine().Run(params)
		return output.GenerateReport(result, flagFormat)
	}
	return nil
}
