package httptransport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ratto/EDaemonCore/internal/catalog"
	"github.com/ratto/EDaemonCore/internal/skilltest"
	dErrors "github.com/ratto/EDaemonCore/pkg/domain-errors"
)

type skillJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Difficulty  int    `json:"difficulty"`
	Attribute   string `json:"attribute,omitempty"`
	Description string `json:"description,omitempty"`
}

type eventJSON struct {
	Seq        int       `json:"seq"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type skillTestResultJSON struct {
	TestID        string      `json:"test_id"`
	Skill         skillJSON   `json:"skill"`
	BaseRoll      int         `json:"base_roll"`
	ModifierTotal int         `json:"modifier_total"`
	RollValue     int         `json:"roll_value"`
	Margin        int         `json:"margin"`
	Success       bool        `json:"success"`
	Events        []eventJSON `json:"events"`
}

func toSkillJSON(s catalog.Skill) skillJSON {
	return skillJSON{
		ID:          s.ID.String(),
		Name:        s.Name,
		Difficulty:  s.Difficulty,
		Attribute:   s.Attribute,
		Description: s.Description,
	}
}

func toEventJSON(ev skilltest.Event) eventJSON {
	var payload any
	switch p := ev.Payload.(type) {
	case skilltest.SkillLoadedPayload:
		payload = map[string]any{"skill_id": p.SkillID.String(), "difficulty": p.Difficulty}
	case skilltest.SkillRolledPayload:
		payload = map[string]any{
			"skill_id":       p.SkillID.String(),
			"base_roll":      p.BaseRoll,
			"modifier_total": p.ModifierTotal,
			"roll_value":     p.RollValue,
		}
	case skilltest.SuccessMarginCalculatedPayload:
		payload = map[string]any{"margin": p.Margin, "success": p.Success}
	}
	return eventJSON{
		Seq:        ev.Seq,
		Kind:       string(ev.Kind()),
		OccurredAt: ev.OccurredAt,
		Payload:    payload,
	}
}

func toResultJSON(res *skilltest.Result) skillTestResultJSON {
	events := make([]eventJSON, 0, len(res.Events))
	for _, ev := range res.Events {
		events = append(events, toEventJSON(ev))
	}
	return skillTestResultJSON{
		TestID:        res.TestID.String(),
		Skill:         toSkillJSON(res.Skill),
		BaseRoll:      res.Roll.BaseRoll,
		ModifierTotal: res.Roll.ModifierTotal,
		RollValue:     res.Roll.Value,
		Margin:        int(res.Margin),
		Success:       res.Success,
		Events:        events,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError centralizes domain error translation to HTTP responses. Keeping
// it here ensures consistent JSON error envelopes.
func writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	writeJSON(w, dErrors.ToHTTPStatus(code), map[string]string{
		"error": string(code),
	})
}
