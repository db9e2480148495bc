// Package notifier forwards price alerts to a Telegram chat.
package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"golang.org/x/time/rate"

	"pet_market/internal/domain/entity"
	"pet_market/pkg/logx"
)

type messageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// Telegram allows about one message per second to a single chat; a burst of
// alerts after a refresh is spread out instead of being rejected.
const (
	defaultSendInterval = time.Second
	defaultSendBurst    = 3
)

type TelegramNotifier struct {
	bot     messageSender
	chatID  int64
	limiter *rate.Limiter
}

type Option func(*TelegramNotifier)

func WithRateLimit(limiter *rate.Limiter) Option {
	return func(n *TelegramNotifier) {
		n.limiter = limiter
	}
}

func NewTelegramNotifier(bot messageSender, chatID int64, opts ...Option) *TelegramNotifier {
	n := &TelegramNotifier{
		bot:     bot,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Every(defaultSendInterval), defaultSendBurst),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Run sends alerts from the channel until ctx is cancelled or it is closed.
func (n *TelegramNotifier) Run(ctx context.Context, alerts <-chan entity.Alert) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case alert, ok := <-alerts:
			if !ok {
				return nil
			}

			if err := n.limiter.Wait(ctx); err != nil {
				logger(ctx).WarnContext(ctx, "alert not sent before shutdown",
					slog.String(logx.FieldItemName, alert.Record.Name), logx.Error(err))

				return nil
			}

			if err := n.SendAlert(ctx, alert); err != nil {
				logger(ctx).ErrorContext(ctx, "failed to send alert",
					slog.String(logx.FieldItemName, alert.Record.Name), logx.Error(err))
			}
		}
	}
}

func (n *TelegramNotifier) SendAlert(ctx context.Context, alert entity.Alert) error {
	msg := tu.Message(
		tu.ID(n.chatID),
		FormatAlert(alert),
	).WithParseMode(telego.ModeHTML)

	if _, err := n.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func FormatAlert(alert entity.Alert) string {
	r := alert.Record

	return fmt.Sprintf(
		"🔥 <b>PRICE SPIKE</b>\n\n"+
			"🐾 <b>Pet:</b> %s [%s]\n"+
			"💰 <b>%s price:</b> %s\n"+
			"📊 <b>24h avg:</b> %s\n"+
			"📈 <b>Deviation:</b> %+.1f%%\n"+
			"💵 <b>Profit:</b> %s\n\n"+
			"<code>%s</code>\n"+
			"<i>%s</i>",
		html.EscapeString(r.Name),
		r.Rarity,
		r.High.Label,
		r.High.Price,
		r.High.DayAvg,
		r.DeviationPercent,
		r.Profit,
		html.EscapeString(r.High.CopyPayload),
		alert.DetectedAt.Format("15:04:05"),
	)
}
