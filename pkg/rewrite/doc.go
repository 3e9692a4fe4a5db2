// Package rewrite performs position-safe edits on template text.
//
// Every rewriter here works on absolute byte offsets recorded against the
// original text. Edits are therefore applied from the highest offset down:
// removing or replacing a later span never moves an earlier one, so offsets
// that have not been used yet stay valid. Apply enforces that ordering and
// rejects overlapping edits.
//
// Dedupe removes all but one block found by package blocks. Substituter
// replaces legacy `request_json` statements with the canonical constants
// block, re-indented to the line it lands on.
package rewrite
