package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/helmcode/rawmat/pkg/llm"
)

var errProbeFailed = errors.New("API connection failed")

func NewProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check that the configured LLM provider answers",
		Args:  cobra.NoArgs,
		RunE:  runProbe,
	}
}

func runProbe(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(runtimeOptions{quiet: true})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = fmt.Sprintf(" Contacting %s...", rt.analyzer.Provider())
	s.Start()
	err = rt.analyzer.ProbeErr(cmd.Context())
	s.Stop()

	if err != nil {
		printError(out, fmt.Sprintf("%s (%s/%s): %s", errProbeFailed, rt.analyzer.Provider(), rt.analyzer.Model(), llm.Classify(err)))
		return fmt.Errorf("%w: %w", errProbeFailed, err)
	}

	printSuccess(out, fmt.Sprintf("API connection working (%s/%s)", rt.analyzer.Provider(), rt.analyzer.Model()))
	return nil
}
