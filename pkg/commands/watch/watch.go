package watch

import (
	"context"

	"github.com/hedgehog-cloud/hublfix/pkg/commands/fix"
	"github.com/hedgehog-cloud/hublfix/pkg/commands/internal"
	"github.com/hedgehog-cloud/hublfix/pkg/config"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
	"github.com/hedgehog-cloud/hublfix/pkg/watch"
)

// WatchOptions defines the options for the Watch command.
type WatchOptions struct {
	FS     types.FS
	Config *config.Config
	DryRun bool
	// OnResult receives the outcome of every fix run, in event order.
	OnResult func(*types.RunResult, error)
	// Ready, when set, is closed once the directory is being watched.
	Ready chan<- struct{}
}

// Watch runs the fix pass on every template written in templates.dir until
// ctx is done. Templates are selected by the same rules as Fix. A rewrite
// that produces no change does not write, so the tool's own writes settle
// after one more event.
func Watch(ctx context.Context, opts WatchOptions) error {
	log := logging.GetLogger("commands.watch")
	log.Debug().Str("command", "Watch").Msg("Executing command")

	compiled, err := opts.Config.Compile()
	if err != nil {
		return err
	}

	pipeline := internal.PipelineOptions{
		Command:   "fix",
		FS:        opts.FS,
		Config:    opts.Config,
		Selection: internal.SelectGlob,
		DryRun:    opts.DryRun,
	}
	src := internal.NewSource(pipeline)

	w, err := watch.NewWatcher(src.Dir, src.Match)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	log.Info().Str("dir", src.Dir).Msg("Watching templates")
	if opts.Ready != nil {
		close(opts.Ready)
	}

	pass := fix.Pass(compiled)
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Watch stopped")
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			log.Debug().Str("document", change.Name).Msg("Template changed")
			run := pipeline
			run.Files = []string{change.Path}
			result, err := internal.RunPipeline(run, pass)
			if opts.OnResult != nil {
				opts.OnResult(result, err)
			}
		}
	}
}
