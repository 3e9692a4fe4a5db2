package blocks

import (
	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// Registry is the ordered list of blocks found in one document, plus the
// recovered problems met along the way.
type Registry struct {
	Document types.Document
	Blocks   []types.Block
	Warnings []error
}

// Collect runs s over doc to completion.
func Collect(doc types.Document, s *Scanner) *Registry {
	reg := &Registry{Document: doc}
	for block, err := range s.Blocks(doc) {
		if err != nil {
			reg.Warnings = append(reg.Warnings, err)
			continue
		}
		reg.Blocks = append(reg.Blocks, block)
	}
	return reg
}

// Len returns the number of blocks.
func (r *Registry) Len() int {
	return len(r.Blocks)
}

// NeedsConsolidation reports whether the document defines the block more
// than once.
func (r *Registry) NeedsConsolidation() bool {
	return len(r.Blocks) > 1
}

// Issues converts the recovered scan errors for reporting.
func (r *Registry) Issues() []types.Issue {
	if len(r.Warnings) == 0 {
		return nil
	}
	issues := make([]types.Issue, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		msg := w.Error()
		if hErr, ok := w.(*errors.HublfixError); ok {
			msg = hErr.Message
		}
		issues = append(issues, types.Issue{
			Code:    string(errors.GetErrorCode(w)),
			Offset:  errors.Offset(w),
			Message: msg,
		})
	}
	return issues
}
