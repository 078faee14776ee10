// Package main contains the entrypoint for the Slack dialogue bot.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/edgard/sakurako/internal/bot"
	"github.com/edgard/sakurako/internal/bot/tasks"
	"github.com/edgard/sakurako/internal/chat"
	"github.com/edgard/sakurako/internal/config"
	"github.com/edgard/sakurako/internal/dialogue"
	"github.com/edgard/sakurako/internal/logger"
	"github.com/edgard/sakurako/internal/relay"
	"github.com/edgard/sakurako/internal/slack"
)

type options struct {
	configPath      string
	credentialsPath string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := execute(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode)
}

func execute(ctx context.Context, args []string) int {
	exitCode := 0
	cmd := newRootCommand(func(ctx context.Context, opts options) {
		exitCode = run(ctx, opts)
	})
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return exitCode
}

func newRootCommand(runFn func(context.Context, options)) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "bot",
		Short:         "Relay Slack messages to a dialogue service and post its replies",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		Run: func(cmd *cobra.Command, _ []string) {
			runFn(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "config.yaml", "Path to the optional configuration file")
	cmd.Flags().StringVar(&opts.credentialsPath, "credentials", config.DefaultCredentialsPath, "Path to the JSON credential file")
	return cmd
}

// run initializes all components, blocks until the chat connection ends and
// returns an exit code (0 for a graceful stop, 1 for failure).
func run(ctx context.Context, opts options) int {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", opts.configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	creds, err := config.LoadCredentials(opts.credentialsPath)
	if err != nil {
		log.Error("Failed to load credentials", "path", opts.credentialsPath, "error", err)
		return 1
	}
	log.Debug("Credentials loaded", "credentials", creds)

	slackClient, err := slack.NewClient(creds.Slack, cfg.Slack.Debug, log)
	if err != nil {
		log.Error("Failed to create Slack client", "error", err)
		return 1
	}

	dialogueClient, err := dialogue.NewClient(ctx, cfg, creds.Docomo, log)
	if err != nil {
		log.Error("Failed to initialize dialogue client", "error", err)
		return 1
	}

	session := relay.NewSession(dialogueClient, log)
	handler := chat.Chain(session.HandleEvent, logger.Middleware(log))

	taskMap := tasks.RegisterAllTasks(tasks.TaskDeps{Logger: log, Events: slackClient})
	sched, err := bot.NewScheduler(log, &cfg.Scheduler, taskMap)
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	app := bot.NewBot(log, slackClient, handler, sched)

	log.Info("Starting bot...")
	runErr := app.Run(ctx)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
