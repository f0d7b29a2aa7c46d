package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	calc "github.com/bvrgo/buyrent-calculator/internal/calculation"
	"github.com/bvrgo/buyrent-calculator/internal/config"
	"github.com/bvrgo/buyrent-calculator/internal/domain"
	"github.com/bvrgo/buyrent-calculator/internal/output"
	"github.com/bvrgo/buyrent-calculator/internal/store"
)

var (
	flagConfig string
	flagFormat string
	flagPreset string
	flagDBPath string
	flagDebug  bool
	flagRecord bool
)

var rootCmd = &cobra.Command{
	Use:   "buyrent",
	Short: "Buy vs rent-and-invest projection",
	Long: "Run a deterministic month-by-month projection comparing buying a home\n" +
		"against renting the same home and investing the difference.",
	RunE: runCalculate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Parameter file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Output format")
	rootCmd.PersistentFlags().StringVarP(&flagPreset, "preset", "p", "", "Load parameters from a stored preset")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath(), "Preset database path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose engine logging")
	rootCmd.PersistentFlags().BoolVar(&flagRecord, "record", false, "Record the run summary in the preset database")
}

func defaultDBPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".buyrent", "presets.db")
}

// stderrLogger adapts the standard log package to the engine logger.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stderrLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (stderrLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (stderrLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

func newEngine() *calc.Engine {
	engine := calc.NewEngine()
	if flagDebug {
		engine.Debug = true
		engine.SetLogger(stderrLogger{})
	}
	return engine
}

// loadParams resolves the parameter source: a stored preset, an explicit
// config file, or a plain positional filename.
func loadParams(args []string) (*domain.SimulationParams, error) {
	if flagPreset != "" {
		db, err := store.Open(flagDBPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = db.Close() }()
		return db.GetPreset(flagPreset)
	}

	path := flagConfig
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, fmt.Errorf("no parameter source: pass --config, --preset, or run 'buyrent example' to generate a starting file")
	}
	return config.NewInputParser().LoadFromFile(path)
}

func runCalculate(_ *cobra.Command, args []string) error {
	params, err := loadParams(args)
	if err != nil {
		return err
	}

	result := newEngine().Run(params)

	if flagRecord {
		db, err := store.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		if err := db.RecordRun(flagPreset, result); err != nil {
			return err
		}
	}

	return output.GenerateReport(result, flagFormat)
}
