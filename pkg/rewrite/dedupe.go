package rewrite

import (
	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// DedupeResult is the outcome of Dedupe.
type DedupeResult struct {
	Text string
	Kept types.Block
	// Removed holds the deleted blocks in removal order, highest offset first.
	Removed []types.Block
	// AlreadyConsolidated is set when there was nothing to remove.
	AlreadyConsolidated bool
}

// Dedupe keeps blocks[keep] and deletes every other block from text. Blocks
// must come from a scan of text. Newlines left behind a deleted block are
// collapsed to one.
func Dedupe(text string, blocks []types.Block, keep int) (DedupeResult, error) {
	if len(blocks) <= 1 {
		res := DedupeResult{Text: text, AlreadyConsolidated: true}
		if len(blocks) == 1 {
			res.Kept = blocks[0]
		}
		return res, nil
	}

	if keep < 0 || keep >= len(blocks) {
		return DedupeResult{}, errors.Newf(errors.ErrInvalidInput,
			"keep index %d out of range for %d blocks", keep, len(blocks))
	}

	edits := make([]Edit, 0, len(blocks)-1)
	removed := make([]types.Block, 0, len(blocks)-1)
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		if b.Start < 0 || b.End > len(text) || b.Start >= b.End {
			return DedupeResult{}, errors.Newf(errors.ErrInvalidInput,
				"block %s is outside the document", b).WithDetail("offset", b.Start)
		}
		if b.Text != "" && text[b.Start:b.End] != b.Text {
			return DedupeResult{}, errors.Newf(errors.ErrInvalidInput,
				"block %s does not match the document text", b).WithDetail("offset", b.Start)
		}
		if i == keep {
			continue
		}
		edits = append(edits, Edit{Start: b.Start, End: b.End, CollapseNewlines: true})
		removed = append(removed, b)
	}

	out, err := Apply(text, edits)
	if err != nil {
		return DedupeResult{}, err
	}

	return DedupeResult{
		Text:    out,
		Kept:    blocks[keep],
		Removed: removed,
	}, nil
}
