package handler

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"pet_market/internal/transport/bot/view"
	"pet_market/pkg/logx"
)

// OnTopCallback flips pages of the /top message. Records are re-read, so a
// page reflects the latest view.
func (h *Handler) OnTopCallback(ctx *th.Context, query telego.CallbackQuery) error {
	records := h.dashboard.View().Records
	text, page := view.TopPage(records, view.ParseTopCallback(query.Data))

	_, err := ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: createPaginationKeyboard(page, view.TotalPages(len(records))),
	})
	// Telegram rejects edits that do not change the message.
	if err != nil {
		logger(ctx).DebugContext(ctx, "top page not edited", slog.Int("page", page), logx.Error(err))
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}
