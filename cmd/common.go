package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/helmcode/rawmat/pkg/analyzer"
	"github.com/helmcode/rawmat/pkg/config"
	"github.com/helmcode/rawmat/pkg/llm"
	"github.com/helmcode/rawmat/pkg/logging"
)

var (
	configFile   string
	providerName string
	modelName    string
	verbose      bool
)

// BindGlobalFlags registers the flags shared by every command.
func BindGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configFile, "config", "", "Path to a rawmat.yaml config file")
	fs.StringVar(&providerName, "provider", "", "LLM provider (gemini, openai, claude)")
	fs.StringVar(&modelName, "model", "", "Override the provider's model")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

type runtime struct {
	cfg      *config.Config
	analyzer *analyzer.Analyzer
}

type runtimeOptions struct {
	// logOut receives log lines; nil means stderr.
	logOut io.Writer
	// quiet raises the log level to warn unless --verbose is set.
	quiet bool
}

// loadRuntime resolves configuration, installs the logger and builds the
// analyzer for the selected provider.
func loadRuntime(opts runtimeOptions) (*runtime, error) {
	cfg, err := config.Load(config.Options{ConfigFile: configFile, Provider: providerName})
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	switch {
	case verbose:
		level = "debug"
	case opts.quiet:
		level = "warn"
	}
	out := opts.logOut
	if out == nil {
		out = os.Stderr
	}
	if err := logging.Setup(level, out); err != nil {
		return nil, err
	}

	client, err := llm.FromConfig(cfg, modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &runtime{cfg: cfg, analyzer: analyzer.New(client)}, nil
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	red := color.New(color.FgRed)
	red.Fprintf(w, "✗ %s\n", msg)
}
