package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/finprod/internal/logging"
)

// setupLogging builds the command logger from the config and --debug, and
// stores it with a fresh trace id in the command context.
func setupLogging(cmd *cobra.Command, opts *rootOptions) *logging.LogPathResult {
	loggingCfg := opts.cfg.LoggingSettings()
	if opts.debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.Output = logging.OutputStderr
		loggingCfg.File = ""
	}

	result := logging.NewLoggerWithPath(loggingCfg)
	opts.logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = result.Logger.With().Str("trace_id", traceID).Logger().WithContext(ctx)
	cmd.SetContext(ctx)

	opts.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("trace_id", traceID).
		Str("api_url", opts.cfg.API.BaseURL).
		Msg("command started")

	return &result
}

// cleanupLogging closes the log file, if any.
func cleanupLogging(_ *cobra.Command, opts *rootOptions) error {
	if opts.logResult != nil {
		return opts.logResult.Close()
	}
	return nil
}
