// # internal/core/app/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jsdeps/internal/core/config"
	"jsdeps/internal/engine/specifier"
	"jsdeps/internal/shared/observability"

	"github.com/gobwas/glob"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Result is the outcome of one Resolve call.
type Result struct {
	// Packages is the sorted install set after ignore patterns.
	Packages []string
	// Classifications holds one entry per input specifier, in input order.
	Classifications []specifier.Classification
	// Ignored lists installable packages dropped by filter.ignore, sorted.
	Ignored []string
}

type App struct {
	Config     *config.Config
	Classifier *specifier.Classifier

	ignoreGlobs []glob.Glob
	logger      *slog.Logger
}

func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	registry := specifier.NewRegistry()
	if cfg.Builtins.DefaultsEnabled() {
		registry = specifier.DefaultRegistry()
	}
	if len(cfg.Builtins.Extra) > 0 {
		registry = registry.With(cfg.Builtins.Extra...)
	}

	ignoreGlobs := make([]glob.Glob, 0, len(cfg.Filter.Ignore))
	for _, p := range cfg.Filter.Ignore {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		ignoreGlobs = append(ignoreGlobs, g)
	}

	// Zero-valued series for every kind, so reports list kinds that never matched.
	for _, kind := range specifier.AllKinds() {
		observability.SpecifiersTotal.WithLabelValues(kind.String())
	}

	classifier := specifier.NewClassifier(registry)
	slog.Debug("classifier ready", "builtins", classifier.Registry().Len(), "ignore_patterns", len(ignoreGlobs))

	return &App{
		Config:      cfg,
		Classifier:  classifier,
		ignoreGlobs: ignoreGlobs,
		logger:      slog.Default(),
	}, nil
}

// SetLogger overrides the logger used for per-specifier debug output.
func (a *App) SetLogger(logger *slog.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

// Resolve classifies specs and returns the packages that need installing.
// The only error it returns is ctx's.
func (a *App) Resolve(ctx context.Context, specs []string) (Result, error) {
	ctx, span := observability.Tracer.Start(ctx, "app.Resolve",
		trace.WithAttributes(attribute.Int("jsdeps.specifiers", len(specs))))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	defer func() {
		observability.ResolveDuration.Observe(time.Since(start).Seconds())
	}()

	classifications := a.Classifier.ClassifyAll(specs)
	installable := specifier.NewPackageSet()
	ignored := specifier.NewPackageSet()
	for _, cl := range classifications {
		observability.SpecifiersTotal.WithLabelValues(cl.Kind.String()).Inc()
		a.logger.Debug("classified specifier", "specifier", cl.Specifier, "kind", cl.Kind.String(), "package", cl.Package)
		if !cl.Kind.Installable() {
			continue
		}
		if a.isIgnored(cl.Package) {
			if !ignored.Contains(cl.Package) {
				observability.PackagesIgnoredTotal.Inc()
			}
			ignored.Add(cl.Package)
			continue
		}
		installable.Add(cl.Package)
	}

	span.SetAttributes(
		attribute.Int("jsdeps.packages", installable.Len()),
		attribute.Int("jsdeps.ignored", ignored.Len()),
	)

	return Result{
		Packages:        installable.Sorted(),
		Classifications: classifications,
		Ignored:         ignored.Sorted(),
	}, nil
}

func (a *App) isIgnored(pkg string) bool {
	for _, g := range a.ignoreGlobs {
		if g.Match(pkg) {
			return true
		}
	}
	return false
}
