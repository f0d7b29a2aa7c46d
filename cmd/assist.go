package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/bvrgo/buyrent-calculator/internal/narrative"
)

var flagAssistDigest bool

var assistCmd = &cobra.Command{
	Use:   "assist",
	Short: "Run the projection and narrate the outcome with Gemini",
	Long: "Runs the projection for the given parameters and asks Gemini for a\n" +
		"plain-language summary of the result. Needs GEMINI_API_KEY or\n" +
		"application default credentials.",
	RunE: runAssist,
}

func init() {
	assistCmd.Flags().BoolVar(&flagAssistDigest, "digest", false, "Print the prompt digest instead of calling the model")
	rootCmd.AddCommand(assistCmd)
}

func runAssist(cmd *cobra.Command, args []string) error {
	params, err := loadParams(args)
	if err != nil {
		return err
	}
	result := newEngine().Run(params)

	if flagAssistDigest {
		fmt.Print(narrative.BuildDigest(result))
		return nil
	}

	ctx := cmd.Context()
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fmt.Errorf("initializing Gemini client: %w", err)
	}

	summarizer, err := narrative.NewSummarizer(ctx, client)
	if err != nil {
		return err
	}
	text, err := summarizer.Summarize(ctx, result)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
