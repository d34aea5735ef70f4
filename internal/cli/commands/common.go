package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/wellplot/internal/logging"
	"github.com/ccollicutt/wellplot/pkg/config"
	"github.com/ccollicutt/wellplot/pkg/session"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// commandContext returns the command's context and logger.
func commandContext(cmd *cobra.Command) (context.Context, *zap.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx, logging.FromContext(ctx).With(zap.String("command", cmd.Name()))
}

func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func openSession(ctx context.Context, logger *zap.Logger, cfg *config.Config, lasFile, topsFile string) (*session.Session, error) {
	s, err := session.Open(ctx, session.Options{
		LASPath:  lasFile,
		TopsPath: topsFile,
		Config:   cfg,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", lasFile, err)
	}
	return s, nil
}
