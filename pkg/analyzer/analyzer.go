package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/helmcode/rawmat/pkg/llm"
	"github.com/helmcode/rawmat/pkg/model"
	"github.com/helmcode/rawmat/pkg/parser"
	"github.com/helmcode/rawmat/pkg/prompts"
)

type Analyzer struct {
	llm llm.LLM
	now func() time.Time
}

func New(l llm.LLM) *Analyzer {
	return &Analyzer{llm: l, now: time.Now}
}

// Provider returns the name of the underlying LLM provider.
func (a *Analyzer) Provider() string { return a.llm.Name() }

// Model returns the model used by the underlying LLM.
func (a *Analyzer) Model() string { return a.llm.Model() }

// Analyze asks the model for the raw materials of req and returns a fresh
// Analysis. Client failures are returned as errors; unusable model output is
// not an error and yields the fallback record with a fallback status.
func (a *Analyzer) Analyze(ctx context.Context, req model.AnalysisRequest) (*model.Analysis, error) {
	prompt, err := prompts.BuildAnalysisPrompt(req)
	if err != nil {
		return nil, err
	}

	start := a.now()
	rawResp, err := a.llm.Chat(ctx, prompt)
	if err != nil {
		log.Error().
			Err(err).
			Str("provider", a.llm.Name()).
			Str("model", a.llm.Model()).
			Str("kind", llm.Classify(err)).
			Msg("analysis request failed")
		return nil, fmt.Errorf("LLM chat: %w", err)
	}

	productName := req.ProductName
	extraction := parser.Extract(rawResp, productName)

	analysis := &model.Analysis{
		ID:          uuid.NewString(),
		ProductName: productName,
		GeneratedAt: a.now(),
		Status:      extraction.Status,
		Result:      extraction.Result,
	}

	log.Info().
		Str("id", analysis.ID).
		Str("provider", a.llm.Name()).
		Str("model", a.llm.Model()).
		Str("status", string(analysis.Status)).
		Int("materials", len(analysis.Result.Materials)).
		Dur("duration", analysis.GeneratedAt.Sub(start)).
		Msg("analysis complete")

	return analysis, nil
}

// Probe reports whether the provider answered the connectivity prompt.
func (a *Analyzer) Probe(ctx context.Context) bool {
	return a.ProbeErr(ctx) == nil
}

// ProbeErr sends the connectivity prompt and returns the client error, if any.
func (a *Analyzer) ProbeErr(ctx context.Context) error {
	_, err := a.llm.Chat(ctx, prompts.ProbePrompt)
	if err != nil {
		log.Warn().Err(err).Str("provider", a.llm.Name()).Msg("connectivity probe failed")
		return err
	}
	log.Debug().Str("provider", a.llm.Name()).Msg("connectivity probe succeeded")
	return nil
}
