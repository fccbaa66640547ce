package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/platform"
	"github.com/spotget/spot-downloader/internal/runner"
)

// runOperation executes one spotdl invocation, streaming combined output to
// stdout and printing the failure summary for download and sync runs.
func runOperation(op model.Operation, queries []string, opts model.DownloadOptions) error {
	// Ctrl-C stops the child process instead of killing the console outright
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// save and url runs never write audio, leave the filesystem alone
	if opts.OutputDir != "" && op.UsesDownloadOptions() {
		abs, err := platform.ValidateOutputDir(opts.OutputDir)
		if err != nil {
			return fmt.Errorf("output directory: %w", err)
		}
		opts.OutputDir = abs
	}

	args := model.BuildCommandArgs(op, queries, opts)
	logger.Info("starting spotdl run",
		zap.String("operation", op.String()),
		zap.Int("queries", len(queries)),
	)
	logger.Debug("assembled command",
		zap.String("binary", model.SpotdlCommand),
		zap.Strings("args", args),
	)

	result, err := runner.NewExecRunner().Run(ctx, model.SpotdlCommand, args, func(line string) {
		fmt.Println(line)
	})

	if err != nil {
		if errors.Is(err, runner.ErrBinaryNotFound) {
			fmt.Println()
			fmt.Printf(platform.CommandNotFoundFormat+"\n", model.SpotdlCommand)
			fmt.Println(platform.PathGuidance)
			return err
		}
		if ctx.Err() != nil {
			logger.Warn("run interrupted", zap.Error(ctx.Err()))
			return fmt.Errorf("%s interrupted", op.DisplayName())
		}
		return err
	}

	fmt.Println()
	fmt.Println(platform.RunBanner(result.ExitCode))
	if result.ExitCode != 0 {
		fmt.Println(platform.ExecutedCommandPrefix + model.SpotdlCommand + " " + platform.QuoteCommand(args))
		fmt.Println(platform.ReviewOutputHint)
	}

	var failures []string
	if op.WantsFailureSummary() {
		failures = platform.ClassifyFailures(result.Lines)
	}
	if summary := platform.SummarizeRun(op, result.ExitCode, failures); len(summary) > 0 {
		fmt.Println()
		for _, line := range summary {
			fmt.Println(line)
		}
	}

	logger.Info("run finished",
		zap.Int("exit_code", result.ExitCode),
		zap.Int("lines", len(result.Lines)),
		zap.Int("failures", len(failures)),
	)

	if result.ExitCode != 0 {
		return fmt.Errorf("spotdl exited with code %d", result.ExitCode)
	}
	return nil
}
