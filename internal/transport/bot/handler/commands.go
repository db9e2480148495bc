package handler

import (
	"errors"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"pet_market/internal/domain"
	"pet_market/internal/transport/bot/view"
	"pet_market/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

// OnTop shows the first page of the current view.
func (h *Handler) OnTop(ctx *th.Context, msg telego.Message) error {
	records := h.dashboard.View().Records
	if len(records) == 0 {
		return h.send(ctx, msg.Chat.ID, view.TopEmpty)
	}

	text, page := view.TopPage(records, 1)

	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: msg.Chat.ID},
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: createPaginationKeyboard(page, view.TotalPages(len(records))),
	})

	return err
}

func (h *Handler) OnCountdown(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, view.Countdown(h.clock.Snapshot()))
}

// OnRefresh runs an analyze with the selected skill.
func (h *Handler) OnRefresh(ctx *th.Context, msg telego.Message) error {
	result, err := h.dashboard.Analyze(ctx)

	switch {
	case errors.Is(err, domain.ErrStaleResponse):
		return h.send(ctx, msg.Chat.ID, view.RefreshStale)
	case err != nil:
		logger(ctx).ErrorContext(ctx, "bot refresh failed", logx.Error(err))
		return h.send(ctx, msg.Chat.ID, view.RefreshFailed)
	default:
		return h.send(ctx, msg.Chat.ID, view.Refreshed(result))
	}
}

func createPaginationKeyboard(page, totalPages int) *telego.InlineKeyboardMarkup {
	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(view.TopCallbackData(page-1)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d / %d", page, totalPages)).
		WithCallbackData("noop"))

	if page < totalPages {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").
			WithCallbackData(view.TopCallbackData(page+1)))
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(buttons...),
	)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})

	return err
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID: telego.ChatID{ID: chatID},
		Text:   text,
	})

	return err
}
