package types

// Replacement records one legacy statement that was replaced by the
// canonical block.
type Replacement struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
}

// Skip records a legacy statement that matched the pattern but was left
// untouched because its variable name is not allowed.
type Skip struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Reason string `json:"reason"`
}

// Issue is a recovered structural problem found while scanning a document.
type Issue struct {
	Code    string `json:"code"`
	Offset  int    `json:"offset"`
	Message string `json:"message"`
}

// DocumentStatus summarizes what happened to one document in a run.
type DocumentStatus string

const (
	StatusUnchanged DocumentStatus = "unchanged"
	StatusChanged   DocumentStatus = "changed"
	StatusNotFound  DocumentStatus = "not_found"
	StatusExcluded  DocumentStatus = "excluded"
)

// DocumentResult is the outcome of running one or more passes over a document.
type DocumentResult struct {
	Name   string         `json:"name"`
	Path   string         `json:"path"`
	Status DocumentStatus `json:"status"`

	// Blocks found by the scanner before any consolidation.
	Blocks []Block `json:"blocks,omitempty"`
	// Removed lists deleted duplicate blocks in the order they were removed.
	Removed []Block `json:"removed,omitempty"`

	// Matches is the number of legacy statements found by the inline pass.
	Matches  int           `json:"matches"`
	Replaced []Replacement `json:"replaced,omitempty"`
	Skipped  []Skip        `json:"skipped,omitempty"`

	Warnings []Issue `json:"warnings,omitempty"`

	// Written is false when the document changed but the run was a dry run.
	Written bool `json:"written"`
}

// Changed reports whether any pass produced new text.
func (r DocumentResult) Changed() bool {
	return r.Status == StatusChanged
}

// RunResult collects the per-document results of one command invocation.
type RunResult struct {
	Command   string           `json:"command"`
	Dir       string           `json:"dir"`
	DryRun    bool             `json:"dry_run"`
	Documents []DocumentResult `json:"documents"`
}

// ChangedCount returns how many documents were changed.
func (r RunResult) ChangedCount() int {
	n := 0
	for _, d := range r.Documents {
		if d.Changed() {
			n++
		}
	}
	return n
}

// WarningCount returns the total number of recovered issues across documents.
func (r RunResult) WarningCount() int {
	n := 0
	for _, d := range r.Documents {
		n += len(d.Warnings)
	}
	return n
}

// GenConfigResult is the outcome of generating a starter configuration.
type GenConfigResult struct {
	ConfigContent string   `json:"config_content"`
	FilesWritten  []string `json:"files_written"`
}
