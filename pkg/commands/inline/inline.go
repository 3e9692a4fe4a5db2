package inline

import (
	"github.com/hedgehog-cloud/hublfix/pkg/commands/internal"
	"github.com/hedgehog-cloud/hublfix/pkg/config"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// InlineOptions defines the options for the Inline command.
type InlineOptions struct {
	FS     types.FS
	Config *config.Config
	// Files names documents explicitly. Empty uses templates.glob minus
	// templates.exclude.
	Files  []string
	DryRun bool
}

// Inline replaces legacy request_json statements with the canonical block.
func Inline(opts InlineOptions) (*types.RunResult, error) {
	log := logging.GetLogger("commands.inline")
	log.Debug().Str("command", "Inline").Msg("Executing command")

	compiled, err := opts.Config.Compile()
	if err != nil {
		return nil, err
	}

	return internal.RunPipeline(internal.PipelineOptions{
		Command:   "inline",
		FS:        opts.FS,
		Config:    opts.Config,
		Files:     opts.Files,
		Selection: internal.SelectGlob,
		DryRun:    opts.DryRun,
	}, Pass(compiled))
}

// Pass substitutes every allowed legacy statement in doc.
func Pass(c *config.Compiled) internal.Pass {
	return func(doc types.Document, res *types.DocumentResult) (string, error) {
		out := c.Substituter.SubstituteDocument(doc)
		res.Matches += out.Matches
		res.Replaced = append(res.Replaced, out.Replaced...)
		res.Skipped = append(res.Skipped, out.Skipped...)
		return out.Text, nil
	}
}
