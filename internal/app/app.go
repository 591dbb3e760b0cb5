// Package app implements the application layer: loading configuration and
// driving build phases through the logging core.
package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/hayuki/ionic-app-scripts/internal/adapters/detector"
	"github.com/hayuki/ionic-app-scripts/internal/adapters/progress"
	"github.com/hayuki/ionic-app-scripts/internal/adapters/watch"
	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
	"github.com/hayuki/ionic-app-scripts/internal/core/ports"
	"github.com/hayuki/ionic-app-scripts/internal/events"
	"github.com/hayuki/ionic-app-scripts/internal/logger"
	"github.com/hayuki/ionic-app-scripts/internal/ui/style"
)

// buildScope names the outer pipeline task.
const buildScope = "build"

// App drives the build pipeline.
type App struct {
	loader      ports.ConfigLoader
	executor    ports.Executor
	bus         *events.Bus
	printerOpts []logger.Option
	newWatcher  func() (ports.Watcher, error)
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, executor ports.Executor, bus *events.Bus) *App {
	return &App{
		loader:   loader,
		executor: executor,
		bus:      bus,
		newWatcher: func() (ports.Watcher, error) {
			return watch.NewWatcher()
		},
	}
}

// WithPrinterOptions appends printer options applied to every run.
// Primarily used by tests to inject writers, clocks and debug mode.
func (a *App) WithPrinterOptions(opts ...logger.Option) *App {
	a.printerOpts = append(a.printerOpts, opts...)
	return a
}

// WithWatcherFactory overrides how watchers are constructed. Used by tests.
func (a *App) WithWatcherFactory(factory func() (ports.Watcher, error)) *App {
	a.newWatcher = factory
	return a
}

// RunOptions configures a build run.
type RunOptions struct {
	// Debug forces debug mode on regardless of configuration.
	Debug bool
}

// Build runs the configured pipeline once. A failed phase yields
// domain.ErrBuildFailed; the failure itself has already been reported
// through the logging core by then.
func (a *App) Build(ctx context.Context, opts RunOptions) error {
	project, printer, err := a.prepare(opts)
	if err != nil {
		return err
	}

	if detector.InteractiveTerminal() {
		rec := progress.New()
		defer rec.Close() //nolint:errcheck // best effort on shutdown
		unsubscribe := rec.Attach(a.bus)
		defer unsubscribe()
	}

	return a.runPipeline(ctx, project, printer)
}

// Watch runs the pipeline once, then keeps rebuilding on debounced file
// changes until the context is canceled. Rebuild failures are reported and
// watching continues.
func (a *App) Watch(ctx context.Context, opts RunOptions) error {
	project, printer, err := a.prepare(opts)
	if err != nil {
		return err
	}

	if detector.InteractiveTerminal() {
		rec := progress.New()
		defer rec.Close() //nolint:errcheck // best effort on shutdown
		unsubscribe := rec.Attach(a.bus)
		defer unsubscribe()
	}

	watchLog := logger.New("watch", printer, a.bus)

	// Initial build. Failures do not end watch mode.
	_ = a.runPipeline(ctx, project, printer)

	watcher, err := a.newWatcher()
	if err != nil {
		return watchLog.Fail(domain.NewBuildError(err))
	}
	defer watcher.Stop() //nolint:errcheck // best effort on shutdown

	cache := watch.NewHashCache()
	rebuild := make(chan struct{}, 1)
	debouncer := watch.NewDebouncer(project.Watch.Debounce, func(paths []string) {
		if !cache.AnyChanged(paths) {
			return
		}
		select {
		case rebuild <- struct{}{}:
		default:
		}
	})

	if err := watcher.Start(ctx, watchRoots(project)...); err != nil {
		return watchLog.Fail(domain.NewBuildError(err))
	}

	watchLog.Ready(printer.Color(style.Green))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for path := range watcher.Events() {
			debouncer.Add(path)
		}
		return nil
	})

	g.Go(func() error {
		defer debouncer.Flush()
		for {
			select {
			case <-ctx.Done():
				_ = watcher.Stop()
				return ctx.Err()
			case <-rebuild:
				_ = a.runPipeline(ctx, project, printer)
			}
		}
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (a *App) prepare(opts RunOptions) (*domain.Project, *logger.Printer, error) {
	project, err := a.loader.Load(".")
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	printerOpts := append(
		[]logger.Option{logger.WithDebugMode(project.Debug || opts.Debug)},
		a.printerOpts...,
	)
	return project, logger.NewPrinter(printerOpts...), nil
}

// runPipeline executes every phase in order, each owning its own Logger.
// The shared pipeline logger demonstrates the reporting contract: a phase
// failure is printed once at the phase layer, and the same error object
// passes silently through the outer layer.
func (a *App) runPipeline(ctx context.Context, project *domain.Project, printer *logger.Printer) error {
	pipeline := logger.New(buildScope, printer, a.bus)

	for i := range project.Phases {
		phase := &project.Phases[i]
		phaseLog := logger.New(phase.Name, printer, a.bus)

		if err := a.executor.Execute(ctx, phase, printer.Out(), printer.Err()); err != nil {
			buildErr := domain.NewBuildError(err)
			phaseLog.Fail(buildErr)
			pipeline.Fail(buildErr)
			return domain.ErrBuildFailed
		}

		phaseLog.Finish()
	}

	pipeline.Finish(printer.Color(style.Green))
	return nil
}

func watchRoots(project *domain.Project) []string {
	if len(project.Watch.Paths) == 0 {
		return []string{project.Root}
	}
	roots := make([]string, 0, len(project.Watch.Paths))
	for _, p := range project.Watch.Paths {
		roots = append(roots, joinRoot(project.Root, p))
	}
	return roots
}

func joinRoot(root, path string) string {
	if path == "" || path == "." {
		return root
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
