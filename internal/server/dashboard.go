package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"pet_market/internal/domain"
	"pet_market/internal/domain/entity"
	"pet_market/internal/domain/service/dashboard"
	"pet_market/internal/domain/value"
	"pet_market/pkg/errcodes"
	"pet_market/pkg/httpx/reply"
	"pet_market/pkg/httpx/req"
	"pet_market/pkg/rest"
)

type dashboardService interface {
	View() entity.View
	Analyze(ctx context.Context) (entity.View, error)
	Search(ctx context.Context, term string) (entity.View, error)
	SearchSkill(ctx context.Context, term string, skill value.Skill) (entity.View, error)
	Preferences() entity.Preferences
	UpdatePreferences(ctx context.Context, patch dashboard.PreferencesPatch) (entity.View, error)
	ToggleRarity(ctx context.Context, r value.Rarity) (entity.View, error)
	CopyReference(ctx context.Context, uuid string) (string, error)
}

type countdownSource interface {
	Snapshot() entity.Countdown
}

type DashboardServer struct {
	dashboardService dashboardService
	countdownSource  countdownSource
}

func NewDashboardServer(dashboardService dashboardService, countdownSource countdownSource) DashboardServer {
	return DashboardServer{
		dashboardService: dashboardService,
		countdownSource:  countdownSource,
	}
}

func (s DashboardServer) getV1View(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTView(s.dashboardService.View()))

	return nil
}

func (s DashboardServer) getV1Options(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTOptions())

	return nil
}

func (s DashboardServer) getV1Countdown(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTCountdown(s.countdownSource.Snapshot()))

	return nil
}

func (s DashboardServer) postV1Analyze(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	view, err := s.dashboardService.Analyze(ctx)
	if err != nil {
		return s.fetchError(w, r, "dashboardService.Analyze", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTView(view))

	return nil
}

func (s DashboardServer) postV1Search(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SearchRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	var (
		view entity.View
		err  error
	)

	if request.Skill != nil {
		skill, parseErr := value.ParseSkill(*request.Skill)
		if parseErr != nil {
			return failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("value.ParseSkill: %w", parseErr),
				failure.WithCode(errcodes.ValidationError),
			)
		}

		view, err = s.dashboardService.SearchSkill(ctx, request.SearchTerm, skill)
	} else {
		view, err = s.dashboardService.Search(ctx, request.SearchTerm)
	}

	if err != nil {
		return s.fetchError(w, r, "dashboardService.Search", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTView(view))

	return nil
}

// fetchError answers a superseded fetch with the current view, since the newer
// request owns the result.
func (s DashboardServer) fetchError(w http.ResponseWriter, r *http.Request, op string, err error) error {
	if errors.Is(err, domain.ErrStaleResponse) {
		reply.JSON(r.Context(), w, http.StatusOK, newRESTView(s.dashboardService.View()))

		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (s DashboardServer) getV1Preferences(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTPreferences(s.dashboardService.Preferences()))

	return nil
}

func (s DashboardServer) patchV1Preferences(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PreferencesPatch

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	patch, err := newDomainPatch(request)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newDomainPatch: %w", err),
			failure.WithCode(errcodes.InvalidPreference),
		)
	}

	view, err := s.dashboardService.UpdatePreferences(ctx, patch)
	if err != nil {
		return fmt.Errorf("dashboardService.UpdatePreferences: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTView(view))

	return nil
}

func (s DashboardServer) postV1ToggleRarity(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	rarity, err := value.ParseRarity(chi.URLParam(r, "rarity"))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseRarity: %w", err),
			failure.WithCode(errcodes.InvalidRarity),
		)
	}

	view, err := s.dashboardService.ToggleRarity(ctx, rarity)
	if err != nil {
		return fmt.Errorf("dashboardService.ToggleRarity: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTView(view))

	return nil
}

func (s DashboardServer) postV1Copy(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CopyRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	payload, err := s.dashboardService.CopyReference(ctx, request.UUID)
	if err != nil {
		return fmt.Errorf("dashboardService.CopyReference: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CopyResponse{Payload: payload})

	return nil
}
