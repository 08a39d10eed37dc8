package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helmcode/rawmat/pkg/formatter"
	"github.com/helmcode/rawmat/pkg/llm"
	"github.com/helmcode/rawmat/pkg/model"
)

var (
	description  string
	outputFormat string
	exportDir    string
)

var outputFormats = []string{"human", "json", "yaml", "report"}

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze PRODUCT",
		Short: "Analyze the raw materials needed to manufacture a product",
		Long: `Ask the configured LLM for a bill of raw materials for a product and
show it with placeholder supplier recommendations.

Examples:
  # Analyze a product
  rawmat analyze "ceramic coffee mug"

  # Add a description for a more specific answer
  rawmat analyze "office chair" -d "ergonomic, mesh back, aluminium base"

  # Machine readable output
  rawmat analyze "ceramic coffee mug" -o json

  # Also write the JSON and report exports
  rawmat analyze "ceramic coffee mug" --export-dir ./out`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Optional product description")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format ("+strings.Join(outputFormats, ", ")+")")
	cmd.Flags().StringVar(&exportDir, "export-dir", "", "Write the JSON and report exports into this directory")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	req := model.AnalysisRequest{ProductName: args[0], ProductDescription: description}
	if err := req.Validate(); err != nil {
		return err
	}
	if !validOutputFormat(outputFormat) {
		return fmt.Errorf("unsupported output format: %s (supported: %s)", outputFormat, strings.Join(outputFormats, ", "))
	}

	rt, err := loadRuntime(runtimeOptions{quiet: true})
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	if outputFormat == "human" {
		printHeader(cmd, req, rt)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(stderr))
	s.Suffix = " Analyzing raw materials..."
	s.Start()

	analysis, err := rt.analyzer.Analyze(ctx, req)
	s.Stop()
	if err != nil {
		printError(stderr, "Analysis failed")
		return fmt.Errorf("analysis failed (%s): %w", llm.Classify(err), err)
	}

	if analysis.Degraded() {
		printError(stderr, fmt.Sprintf("Model output was unusable (%s), showing placeholder result", analysis.Status))
	} else {
		printSuccess(stderr, "Analysis complete")
	}

	if err := formatter.DisplayResults(cmd.OutOrStdout(), analysis, outputFormat); err != nil {
		return err
	}

	if exportDir != "" {
		paths, err := formatter.WriteExports(exportDir, analysis)
		if err != nil {
			return fmt.Errorf("failed to export analysis: %w", err)
		}
		for _, p := range paths {
			printSuccess(stderr, "Saved "+p)
		}
	}

	return nil
}

func validOutputFormat(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}

func printHeader(cmd *cobra.Command, req model.AnalysisRequest, rt *runtime) {
	w := cmd.ErrOrStderr()
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w)
	cyan.Fprintln(w, "🏭 Raw Materials Analyzer")
	fmt.Fprintf(w, "📝 Product: %s\n", req.ProductName)
	if d := strings.TrimSpace(req.ProductDescription); d != "" {
		fmt.Fprintf(w, "📄 Description: %s\n", d)
	}
	fmt.Fprintf(w, "🤖 Model: %s/%s\n", rt.analyzer.Provider(), rt.analyzer.Model())
	fmt.Fprintln(w)
}
