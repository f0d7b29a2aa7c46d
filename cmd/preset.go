package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bvrgo/buyrent-calculator/internal/config"
	"github.com/bvrgo/buyrent-calculator/internal/store"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage stored parameter presets",
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Store the parameters from --config as a named preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetSave,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored presets",
	RunE:  runPresetList,
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored preset as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a stored preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

func init() {
	presetCmd.AddCommand(presetSaveCmd, presetListCmd, presetShowCmd, presetDeleteCmd)
	rootCmd.AddCommand(presetCmd)
}

func openStore() (*store.Store, error) {
	return store.Open(flagDBPath)
}

func runPresetSave(_ *cobra.Command, args []string) error {
	if flagConfig == "" {
		return fmt.Errorf("pass --config with the parameter file to store")
	}
	params, err := config.NewInputParser().LoadFromFile(flagConfig)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.SavePreset(args[0], params); err != nil {
		return err
	}
	fmt.Printf("Saved preset %q\n", args[0])
	return nil
}

func runPresetList(_ *cobra.Command, _ []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	presets, err := db.ListPresets()
	if err != nil {
		return err
	}
	if len(presets) == 0 {
		fmt.Println("No presets stored. Save one with: buyrent preset save <name> -c params.yaml")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tYEARS\tHOME PRICE\tMONTHLY RENT\tUPDATED")
	for _, p := range presets {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			p.Name, p.Years, p.HomePrice, p.MonthlyRent, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runPresetShow(_ *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	params, err := db.GetPreset(args[0])
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(params)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}

func runPresetDelete(_ *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.DeletePreset(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted preset %q\n", args[0])
	return nil
}
