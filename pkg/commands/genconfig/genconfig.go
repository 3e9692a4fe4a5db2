package genconfig

import (
	"path/filepath"

	"github.com/hedgehog-cloud/hublfix/pkg/config"
	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/hedgehog-cloud/hublfix/pkg/types"
)

// GenConfigOptions holds options for the config --init command
type GenConfigOptions struct {
	Root  string
	Write bool
	FS    types.FS
}

// GenConfig outputs or writes a starter project configuration
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GenerateConfigContent()
	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	// If not writing, just return the content
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	targetPath := filepath.Join(opts.Root, config.ProjectConfigNames[0])
	for _, name := range config.ProjectConfigNames {
		existing := filepath.Join(opts.Root, name)
		if _, err := opts.FS.Stat(existing); err == nil {
			logger.Warn().Str("path", existing).Msg("Config file already exists, skipping")
			return result, nil
		}
	}

	if err := opts.FS.MkdirAll(opts.Root, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory %s", opts.Root).
			WithDetail("path", opts.Root)
	}
	if err := opts.FS.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath).
			WithDetail("path", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
