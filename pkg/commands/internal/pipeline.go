package internal

import (
	"github.com/hedgehog-cloud/hublfix/pkg/config"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/templates"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// Selection picks how documents are enumerated when no files are named.
type Selection int

const (
	// SelectAllowList uses templates.files.
	SelectAllowList Selection = iota
	// SelectGlob uses templates.glob minus templates.exclude.
	SelectGlob
	// SelectAll uses templates.glob and excludes nothing.
	SelectAll
)

// Pass transforms one document. It fills in the pass-specific parts of res
// and returns the new text, which equals doc.Text when nothing changed.
type Pass func(doc types.Document, res *types.DocumentResult) (string, error)

// PipelineOptions contains options for running a pass over documents
type PipelineOptions struct {
	Command   string
	FS        types.FS
	Config    *config.Config
	Files     []string
	Selection Selection
	DryRun    bool
	// ReadOnly commands never write, even when the pass changes text.
	ReadOnly bool
}

// NewSource builds the document source for opts.
func NewSource(opts PipelineOptions) *templates.Source {
	cfg := opts.Config
	src := &templates.Source{
		FS:   opts.FS,
		Dir:  cfg.TemplatesDir(),
		Glob: cfg.Templates.Glob,
	}
	switch opts.Selection {
	case SelectAllowList:
		src.Files = cfg.Templates.Files
	case SelectGlob:
		src.Exclude = cfg.Templates.Exclude
	}
	return src
}

// RunPipeline resolves the documents and runs pass over each of them in
// order: load, transform, write when changed. Enumeration problems fail the
// run before any document is loaded.
func RunPipeline(opts PipelineOptions, pass Pass) (*types.RunResult, error) {
	logger := logging.GetLogger("commands.internal.pipeline").With().
		Str("command", opts.Command).
		Logger()
	done := logging.LogOperationStart(logger, opts.Command)
	defer done()

	src := NewSource(opts)
	entries, err := src.Resolve(opts.Files)
	if err != nil {
		return nil, err
	}

	store := templates.NewStore(opts.FS)
	result := &types.RunResult{
		Command: opts.Command,
		Dir:     src.Dir,
		DryRun:  opts.DryRun,
	}

	for _, entry := range entries {
		res := types.DocumentResult{
			Name:   entry.Name,
			Path:   entry.Path,
			Status: entry.Status,
		}

		if !entry.Pending() {
			switch entry.Status {
			case types.StatusNotFound:
				logger.Warn().Str("document", entry.Name).Msg("File not found")
			case types.StatusExcluded:
				logger.Info().Str("document", entry.Name).Msg("Skipping excluded file")
			}
			result.Documents = append(result.Documents, res)
			continue
		}

		doc, err := store.Load(entry)
		if err != nil {
			return result, err
		}

		text, err := pass(doc, &res)
		if err != nil {
			return result, err
		}

		if text == doc.Text {
			res.Status = types.StatusUnchanged
			result.Documents = append(result.Documents, res)
			continue
		}

		res.Status = types.StatusChanged
		if !opts.DryRun && !opts.ReadOnly {
			if err := store.Save(doc.WithText(text)); err != nil {
				return result, err
			}
			res.Written = true
		}
		logger.Debug().
			Str("document", entry.Name).
			Bool("written", res.Written).
			Msg("Document changed")
		result.Documents = append(result.Documents, res)
	}

	logger.Info().
		Int("documents", len(result.Documents)).
		Int("changed", result.ChangedCount()).
		Int("warnings", result.WarningCount()).
		Msg("Command finished")
	return result, nil
}
