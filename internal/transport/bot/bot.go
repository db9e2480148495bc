package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"pet_market/internal/transport/bot/handler"
	"pet_market/pkg/contextx"
	"pet_market/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const longPollingTimeout = 60

// Bot answers admin commands over long polling.
type Bot struct {
	bot     *telego.Bot
	adminID int64
	handler *handler.Handler
}

func New(bot *telego.Bot, adminID int64, h *handler.Handler) *Bot {
	return &Bot{
		bot:     bot,
		adminID: adminID,
		handler: h,
	}
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.adminID)

	go func() {
		if err := botHandler.Start(); err != nil {
			logger(ctx).ErrorContext(ctx, "bot handler stopped", logx.Error(err))
		}
	}()

	logger(ctx).InfoContext(ctx, "bot started")

	<-ctx.Done()

	if err := botHandler.Stop(); err != nil {
		logger(ctx).ErrorContext(ctx, "botHandler.Stop", logx.Error(err))
	}

	logger(ctx).InfoContext(ctx, "bot stopped")

	return nil
}
