package handler

import (
	"context"

	"pet_market/internal/domain/entity"
)

type Dashboard interface {
	View() entity.View
	Analyze(ctx context.Context) (entity.View, error)
}

type CountdownSource interface {
	Snapshot() entity.Countdown
}

type Handler struct {
	dashboard Dashboard
	clock     CountdownSource
}

func New(dashboard Dashboard, clock CountdownSource) *Handler {
	return &Handler{
		dashboard: dashboard,
		clock:     clock,
	}
}
