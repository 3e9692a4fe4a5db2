package hublfix

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "Consolidate and inline constants blocks in HubL templates"
	MsgScanShort        = "Report constants blocks without changing anything"
	MsgScanLong         = "Scan lists every constants block in each template with its position and annotation, and reports malformed blocks."
	MsgConsolidateShort = "Remove duplicate constants blocks"
	MsgInlineShort      = "Replace request_json statements with inline constants"
	MsgFixShort         = "Inline, then consolidate"
	MsgWatchShort       = "Fix templates as they are written"
	MsgConfigShort      = "Show or create the configuration"
	MsgConfigLong       = "Config prints the effective configuration as TOML. With --init it writes a commented starter .hublfix.toml; with --defaults it prints that starter file instead."
	MsgTopicsShort      = "Display available documentation topics"
	MsgTopicsLong       = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate the man page"
	MsgVersionShort     = "Print version information"

	// Status messages
	MsgWatching       = "Watching %s (press Ctrl+C to stop)"
	MsgNoConfigFile   = "# no configuration files found, showing defaults\n"
	MsgConfigSource   = "# from %s\n"
	MsgLookbackRaised = "# annotation.lookback is raised to %d to fit the canonical block\n"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrWorkDir   = "failed to determine working directory"
	MsgErrNoHelp    = "help command not found"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Report changes without writing them"
	MsgFlagDir      = "Templates directory (overrides templates.dir)"
	MsgFlagRoot     = "Project directory holding .hublfix.toml"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagKeep     = "Index of the block to keep (overrides consolidate.keep)"
	MsgFlagInit     = "Write a starter .hublfix.toml in the project directory"
	MsgFlagDefaults = "Print the starter configuration instead of the effective one"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/consolidate-long.txt
	msgConsolidateLongRaw string
	MsgConsolidateLong    = strings.TrimSpace(msgConsolidateLongRaw)

	//go:embed msgs/inline-long.txt
	msgInlineLongRaw string
	MsgInlineLong    = strings.TrimSpace(msgInlineLongRaw)

	//go:embed msgs/fix-long.txt
	msgFixLongRaw string
	MsgFixLong    = strings.TrimSpace(msgFixLongRaw)

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
