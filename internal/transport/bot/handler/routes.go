package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"pet_market/internal/transport/bot/middleware"
	"pet_market/internal/transport/bot/view"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnTop, th.CommandEqual("top"))
	adminGroup.HandleMessage(h.OnCountdown, th.CommandEqual("countdown"))
	adminGroup.HandleMessage(h.OnRefresh, th.CommandEqual("refresh"))

	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(adminID))

	cbGroup.HandleCallbackQuery(h.OnTopCallback, th.CallbackDataPrefix(view.TopCallbackPrefix))
}
