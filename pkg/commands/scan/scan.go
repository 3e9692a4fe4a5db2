package scan

import (
	"github.com/hedgehog-cloud/hublfix/pkg/blocks"
	"github.com/hedgehog-cloud/hublfix/pkg/commands/internal"
	"github.com/hedgehog-cloud/hublfix/pkg/config"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// ScanOptions defines the options for the Scan command.
type ScanOptions struct {
	FS     types.FS
	Config *config.Config
	// Files names documents explicitly. Empty scans every globbed document.
	Files []string
}

// Scan reports the constants blocks of every document. It never writes.
func Scan(opts ScanOptions) (*types.RunResult, error) {
	log := logging.GetLogger("commands.scan")
	log.Debug().Str("command", "Scan").Msg("Executing command")

	compiled, err := opts.Config.Compile()
	if err != nil {
		return nil, err
	}

	return internal.RunPipeline(internal.PipelineOptions{
		Command:   "scan",
		FS:        opts.FS,
		Config:    opts.Config,
		Files:     opts.Files,
		Selection: internal.SelectAll,
		ReadOnly:  true,
	}, Pass(compiled))
}

// Pass records blocks and scan warnings without changing the text.
func Pass(c *config.Compiled) internal.Pass {
	return func(doc types.Document, res *types.DocumentResult) (string, error) {
		reg := blocks.Collect(doc, c.Scanner)
		res.Blocks = reg.Blocks
		res.Warnings = append(res.Warnings, reg.Issues()...)
		return doc.Text, nil
	}
}
