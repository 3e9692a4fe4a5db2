package consolidate

import (
	"github.com/hedgehog-cloud/hublfix/pkg/blocks"
	"github.com/hedgehog-cloud/hublfix/pkg/commands/internal"
	"github.com/hedgehog-cloud/hublfix/pkg/config"
	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/rewrite"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// ConsolidateOptions defines the options for the Consolidate command.
type ConsolidateOptions struct {
	FS     types.FS
	Config *config.Config
	// Files names documents explicitly. Empty uses templates.files.
	Files  []string
	DryRun bool
}

// Consolidate removes duplicate constants blocks, keeping the one at
// consolidate.keep.
func Consolidate(opts ConsolidateOptions) (*types.RunResult, error) {
	log := logging.GetLogger("commands.consolidate")
	log.Debug().Str("command", "Consolidate").Msg("Executing command")

	compiled, err := opts.Config.Compile()
	if err != nil {
		return nil, err
	}

	return internal.RunPipeline(internal.PipelineOptions{
		Command:   "consolidate",
		FS:        opts.FS,
		Config:    opts.Config,
		Files:     opts.Files,
		Selection: internal.SelectAllowList,
		DryRun:    opts.DryRun,
	}, Pass(compiled))
}

// Pass scans doc and deletes every block but the kept one.
func Pass(c *config.Compiled) internal.Pass {
	log := logging.GetLogger("commands.consolidate")
	return func(doc types.Document, res *types.DocumentResult) (string, error) {
		reg := blocks.Collect(doc, c.Scanner)
		res.Blocks = reg.Blocks
		res.Warnings = append(res.Warnings, reg.Issues()...)

		out, err := rewrite.Dedupe(doc.Text, reg.Blocks, c.Keep)
		if err != nil {
			if hErr, ok := err.(*errors.HublfixError); ok {
				hErr.WithDetail("document", doc.Name)
			}
			return "", err
		}
		if out.AlreadyConsolidated {
			log.Debug().Str("document", doc.Name).Int("blocks", reg.Len()).Msg("Already consolidated")
			return doc.Text, nil
		}

		res.Removed = out.Removed
		for _, b := range out.Removed {
			log.Info().
				Str("document", doc.Name).
				Int("start", b.Start).
				Int("end", b.End).
				Msg("Removed duplicate block")
		}
		return out.Text, nil
	}
}
