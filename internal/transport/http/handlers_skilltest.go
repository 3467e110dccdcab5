package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ratto/EDaemonCore/internal/eventlog"
	"github.com/ratto/EDaemonCore/internal/skilltest"
	id "github.com/ratto/EDaemonCore/pkg/domain"
	dErrors "github.com/ratto/EDaemonCore/pkg/domain-errors"
	"github.com/ratto/EDaemonCore/pkg/requestcontext"
)

// Engine is the skill-test execution port exposed by the use case.
type Engine interface {
	Execute(ctx context.Context, req skilltest.Request) (*skilltest.Result, error)
}

// SkillTestHandler handles skill-test execution and trace replay endpoints.
type SkillTestHandler struct {
	engine Engine
	events eventlog.Store
	logger *slog.Logger
}

func NewSkillTestHandler(engine Engine, events eventlog.Store, logger *slog.Logger) *SkillTestHandler {
	return &SkillTestHandler{engine: engine, events: events, logger: logger}
}

// Register registers the skill-test routes with the chi router.
func (h *SkillTestHandler) Register(r chi.Router) {
	r.Post("/skill-tests", h.handleExecute)
	r.Get("/skill-tests/{testID}/events", h.handleListEvents)
}

type executeRequestJSON struct {
	CharacterID string         `json:"character_id"`
	SkillID     string         `json:"skill_id"`
	Modifiers   map[string]int `json:"modifiers"`
}

func (h *SkillTestHandler) handleExecute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body executeRequestJSON
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	characterID, err := id.ParseCharacterID(body.CharacterID)
	if err != nil {
		writeError(w, err)
		return
	}
	skillID, err := id.ParseSkillID(body.SkillID)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.engine.Execute(ctx, skilltest.Request{
		CharacterID: characterID,
		SkillID:     skillID,
		Modifiers:   skilltest.NewModifierSet(body.Modifiers),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "skill test failed",
			"request_id", requestcontext.RequestID(ctx),
			"skill_id", skillID,
			"error", err,
		)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultJSON(result))
}

func (h *SkillTestHandler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	testID, err := id.ParseTestID(chi.URLParam(r, "testID"))
	if err != nil {
		writeError(w, err)
		return
	}

	events, err := h.events.ListByTest(ctx, testID)
	if err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "event log unavailable"))
		return
	}
	if len(events) == 0 {
		writeError(w, dErrors.Newf(dErrors.CodeNotFound, "no events for test %s", testID))
		return
	}

	out := make([]eventJSON, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventJSON(ev))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"test_id": testID.String(),
		"events":  out,
	})
}
