// Package updater runs one refresh of the status block: gather the facts,
// render the block and splice it into the target document.
package updater

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pders01/fna-context/internal/config"
	"github.com/pders01/fna-context/internal/document"
	"github.com/pders01/fna-context/internal/health"
	"github.com/pders01/fna-context/internal/models"
	"github.com/pders01/fna-context/internal/render"
	"github.com/pders01/fna-context/internal/routes"
	"github.com/pders01/fna-context/internal/section"
	"github.com/pders01/fna-context/internal/stats"
	"go.uber.org/zap"
)

// Options tune a single run
type Options struct {
	// DryRun computes the new document without writing it
	DryRun bool
	// Now overrides the clock, mostly for tests
	Now func() time.Time
}

// Result describes what a run did
type Result struct {
	Report   models.Report
	Outcome  models.Outcome
	Document string
}

// Gather collects a fresh report. It never fails; every source falls back
// to its default and logs why.
func Gather(ctx context.Context, cfg *config.Config, logger *zap.Logger, now time.Time) models.Report {
	snap := stats.Gather(ctx, logger, cfg.DatabasePath)
	status := health.Check(ctx, logger, cfg.HealthURL, cfg.HealthTimeout)

	endpoints, err := routes.CountFile(cfg.ServerSource, cfg.RoutePatterns)
	if err != nil {
		logger.Warn("Could not count endpoints", zap.String("path", cfg.ServerSource), zap.Error(err))
	}

	return models.Report{
		Stats:       snap,
		Server:      status,
		Endpoints:   endpoints,
		GeneratedAt: now,
	}
}

// RenderBlock renders report with the template configured in cfg
func RenderBlock(cfg *config.Config, report models.Report) (string, error) {
	r, err := render.New(cfg.TemplatePath)
	if err != nil {
		return "", err
	}
	return r.Render(render.Input{
		Report:       report,
		Marker:       cfg.Marker,
		ProjectRoot:  cfg.ProjectRoot,
		DatabasePath: cfg.DatabasePath,
		GitHubURL:    cfg.GitHubURL,
		PublicURL:    cfg.PublicURL,
		HealthURL:    cfg.HealthURL,
		TunnelConfig: cfg.TunnelConfig,
	})
}

// Run refreshes the managed section of the target document. A missing
// document is an error; a missing section is logged and reported through
// Result.Outcome without touching the file.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts Options) (*Result, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	doc, err := document.Read(cfg.DocumentPath)
	if err != nil {
		logger.Error("Cannot read target document", zap.String("path", cfg.DocumentPath), zap.Error(err))
		return nil, err
	}

	report := Gather(ctx, cfg, logger, now())

	block, err := RenderBlock(cfg, report)
	if err != nil {
		return nil, err
	}

	result := &Result{Report: report, Document: doc}

	updated, err := section.Replace(doc, cfg.Marker, cfg.NextMarkers, block)
	if errors.Is(err, section.ErrNotFound) {
		logger.Warn("Section not found in target document",
			zap.String("path", cfg.DocumentPath),
			zap.String("marker", cfg.Marker))
		result.Outcome = models.OutcomeSectionNotFound
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to replace section: %w", err)
	}

	result.Document = updated

	switch {
	case opts.DryRun:
		result.Outcome = models.OutcomeDryRun
	case updated == doc:
		result.Outcome = models.OutcomeUnchanged
	default:
		if err := document.Write(cfg.DocumentPath, updated); err != nil {
			logger.Error("Cannot write target document", zap.String("path", cfg.DocumentPath), zap.Error(err))
			return nil, err
		}
		result.Outcome = models.OutcomeUpdated
	}

	logger.Info("FNA context updated",
		zap.String("outcome", string(result.Outcome)),
		zap.Time("at", report.GeneratedAt),
		zap.String("server", string(report.Server)),
		zap.Int("meals", report.Stats.TotalMeals))

	return result, nil
}
