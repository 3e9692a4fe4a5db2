package fix

import (
	"github.com/hedgehog-cloud/hublfix/pkg/commands/consolidate"
	"github.com/hedgehog-cloud/hublfix/pkg/commands/inline"
	"github.com/hedgehog-cloud/hublfix/pkg/commands/internal"
	"github.com/hedgehog-cloud/hublfix/pkg/config"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// FixOptions defines the options for the Fix command.
type FixOptions struct {
	FS     types.FS
	Config *config.Config
	// Files names documents explicitly. Empty uses templates.glob minus
	// templates.exclude.
	Files  []string
	DryRun bool
}

// Fix runs the inline pass and then the consolidate pass on each document,
// writing it at most once.
func Fix(opts FixOptions) (*types.RunResult, error) {
	log := logging.GetLogger("commands.fix")
	log.Debug().Str("command", "Fix").Msg("Executing command")

	compiled, err := opts.Config.Compile()
	if err != nil {
		return nil, err
	}

	return internal.RunPipeline(internal.PipelineOptions{
		Command:   "fix",
		FS:        opts.FS,
		Config:    opts.Config,
		Files:     opts.Files,
		Selection: internal.SelectGlob,
		DryRun:    opts.DryRun,
	}, Pass(compiled))
}

// Pass chains the inline and consolidate passes. Blocks are reported as
// found after substitution.
func Pass(c *config.Compiled) internal.Pass {
	inlinePass := inline.Pass(c)
	consolidatePass := consolidate.Pass(c)
	return func(doc types.Document, res *types.DocumentResult) (string, error) {
		text, err := inlinePass(doc, res)
		if err != nil {
			return "", err
		}
		return consolidatePass(doc.WithText(text), res)
	}
}
