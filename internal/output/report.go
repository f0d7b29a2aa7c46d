package output

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bvrgo/buyrent-calculator/internal/domain"
)

// GenerateReport runs the named formatter and writes the result to a
// timestamped file. "console" and "console-lite" additionally print to stdout.
func GenerateReport(result *domain.SimulationResult, format string) error {
	name := NormalizeFormatName(format)
	f := GetFormatterByName(name)
	if f == nil {
		if name == "all" {
			if _, err := WriteFormatted(ConsoleVerboseFormatter{}, result, "txt"); err != nil {
				return err
			}
			if _, err := WriteFormatted(CSVSummarizer{}, result, "csv"); err != nil {
				return err
			}
			_, err := WriteFormatted(HTMLFormatter{}, result, "html")
			return err
		}
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}

	switch name {
	case "console", "console-lite":
		data, err := f.Format(result)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		_, err := WriteFormatted(f, result, extensionFor(name))
		return err
	}
}

func extensionFor(name string) string {
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case name == "console", name == "console-lite":
		return "txt"
	default:
		return name
	}
}

// SaveConfiguration writes run parameters to a YAML file.
func SaveConfiguration(params *domain.SimulationParams, filename string) error {
	b, err := yaml.Marshal(params)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
