// Package bot wires the chat transport, the relay session and the scheduler
// together and manages their lifecycle.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/edgard/sakurako/internal/chat"
)

// Listener runs the chat connection, delivering events to handler until the
// connection ends or ctx is cancelled.
type Listener interface {
	Run(ctx context.Context, handler chat.HandlerFunc) error
}

// Bot represents the main bot application and manages its components' lifecycle.
type Bot struct {
	logger    *slog.Logger
	listener  Listener
	handler   chat.HandlerFunc
	scheduler *Scheduler
}

// NewBot creates a new instance of the bot. The scheduler may be nil.
func NewBot(logger *slog.Logger, listener Listener, handler chat.HandlerFunc, scheduler *Scheduler) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		logger:    logger.With("component", "bot_orchestrator"),
		listener:  listener,
		handler:   handler,
		scheduler: scheduler,
	}
}

// Run starts the listener and the scheduler and blocks until the listener
// stops. A cancelled ctx is a graceful stop and returns nil; any other end of
// the connection is returned as an error. There is no reconnection.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("Starting bot orchestrator...")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info("Starting chat listener...")
		err := b.listener.Run(gCtx, b.handler)
		b.logger.Info("Chat listener stopped.", "error", err)

		if gCtx.Err() != nil && (err == nil || errors.Is(err, gCtx.Err())) {
			return nil
		}
		if err == nil {
			return fmt.Errorf("chat listener stopped unexpectedly")
		}
		return fmt.Errorf("chat listener stopped: %w", err)
	})

	if b.scheduler != nil {
		g.Go(func() error {
			b.logger.Info("Starting scheduler...")
			if err := b.scheduler.Start(); err != nil {
				b.logger.Error("Failed to start scheduler", "error", err)
				return fmt.Errorf("failed to start scheduler: %w", err)
			}

			<-gCtx.Done()
			b.logger.Info("Shutdown signal received, stopping scheduler...")

			if err := b.scheduler.Stop(); err != nil {
				b.logger.Error("Error stopping scheduler", "error", err)
			}
			return nil
		})
	}

	b.logger.Info("Bot orchestrator running. Waiting for shutdown signal or error...")
	err := g.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Error("Bot orchestrator stopped due to error", "error", err)
		return err
	}

	b.logger.Info("Bot orchestrator stopped gracefully.")
	return nil
}
