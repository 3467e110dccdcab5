package httptransport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ratto/EDaemonCore/internal/catalog"
	id "github.com/ratto/EDaemonCore/pkg/domain"
	dErrors "github.com/ratto/EDaemonCore/pkg/domain-errors"
	"github.com/ratto/EDaemonCore/pkg/platform/sentinel"
)

// CatalogHandler serves read-only skill catalog endpoints.
type CatalogHandler struct {
	skills catalog.Store
	logger *slog.Logger
}

func NewCatalogHandler(skills catalog.Store, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{skills: skills, logger: logger}
}

// Register registers the catalog routes with the chi router.
func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/skills", h.handleListSkills)
	r.Get("/skills/{skillID}", h.handleGetSkill)
}

func (h *CatalogHandler) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skills.List(r.Context())
	if err != nil {
		writeError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "skill catalog unavailable"))
		return
	}
	out := make([]skillJSON, 0, len(skills))
	for _, skill := range skills {
		out = append(out, toSkillJSON(skill))
	}
	writeJSON(w, http.StatusOK, map[string]any{"skills": out})
}

func (h *CatalogHandler) handleGetSkill(w http.ResponseWriter, r *http.Request) {
	skillID, err := id.ParseSkillID(chi.URLParam(r, "skillID"))
	if err != nil {
		writeError(w, err)
		return
	}

	skill, err := h.skills.GetByID(r.Context(), skillID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			writeError(w, dErrors.Newf(dErrors.CodeNotFound, "skill %q not found", skillID))
			return
		}
		writeError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "skill catalog unavailable"))
		return
	}
	writeJSON(w, http.StatusOK, toSkillJSON(skill))
}
