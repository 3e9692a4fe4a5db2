// Package blocks finds brace-delimited statement blocks in HubL template
// sources.
//
// A block starts at a marker such as `{% set constants = {`, continues through
// a payload whose nested braces are balanced, and ends at the closing token
// `%}`. The payload's true end cannot be found with a regular expression, so
// the scanner counts brace depth from the opening delimiter and only then
// checks for the closing token.
//
// Scanning is lazy: Scanner.Scan returns an iterator that yields one block at
// a time. Malformed candidates are yielded as errors with the
// UNBALANCED_DELIMITER or MISSING_CLOSING_TOKEN codes and scanning resumes
// after them, so one broken block never hides the rest of the document.
//
// A block may be preceded by an annotation comment
// (`{# Issue #327 Fix ... #}`). The Annotator extends a block backwards to
// include it so that removing a block also removes its comment.
//
// Collect drains a scan into a Registry, the ordered list of blocks for one
// document that the rewrite package consumes.
package blocks
