package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AdminOnly drops every update that does not come from adminID.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if IsFromAdmin(update, adminID) {
			return ctx.Next(update)
		}

		return nil
	}
}

func IsFromAdmin(update telego.Update, adminID int64) bool {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID == adminID
	case update.CallbackQuery != nil:
		return update.CallbackQuery.From.ID == adminID
	default:
		return false
	}
}
