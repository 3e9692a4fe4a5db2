// Package commands provides high-level command implementations for hublfix.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the scan and rewrite packages.
//
// Each command is implemented in its own subdirectory:
//   - scan/        - Scan command (read-only report)
//   - consolidate/ - Consolidate command (duplicate removal)
//   - inline/      - Inline command (request_json substitution)
//   - fix/         - Fix command (inline, then consolidate)
//   - watch/       - Watch command (fix on every write)
//   - genconfig/   - GenConfig command (starter configuration)
//   - internal/    - Shared enumerate, load, transform, write loop
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"context"

	"github.com/hedgehog-cloud/hublfix/pkg/commands/consolidate"
	"github.com/hedgehog-cloud/hublfix/pkg/commands/fix"
	"github.com/hedgehog-cloud/hublfix/pkg/commands/genconfig"
	"github.com/hedgehog-cloud/hublfix/pkg/commands/inline"
	"github.com/hedgehog-cloud/hublfix/pkg/commands/scan"
	"github.com/hedgehog-cloud/hublfix/pkg/commands/watch"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// Scan reports constants blocks without writing.
type ScanOptions = scan.ScanOptions

func Scan(opts ScanOptions) (*types.RunResult, error) {
	return scan.Scan(opts)
}

// Consolidate removes duplicate constants blocks.
type ConsolidateOptions = consolidate.ConsolidateOptions

func Consolidate(opts ConsolidateOptions) (*types.RunResult, error) {
	return consolidate.Consolidate(opts)
}

// Inline replaces legacy request_json statements.
type InlineOptions = inline.InlineOptions

func Inline(opts InlineOptions) (*types.RunResult, error) {
	return inline.Inline(opts)
}

// Fix runs inline and consolidate together.
type FixOptions = fix.FixOptions

func Fix(opts FixOptions) (*types.RunResult, error) {
	return fix.Fix(opts)
}

// Watch fixes templates as they are written.
type WatchOptions = watch.WatchOptions

func Watch(ctx context.Context, opts WatchOptions) error {
	return watch.Watch(ctx, opts)
}

// GenConfig outputs or writes a starter configuration.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
