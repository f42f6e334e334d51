package health

import (
	"net/http"
	"time"

	"onboarding/internal/adapters/http/response"
)

type LivenessHandler struct {
	version string
	started time.Time
	now     func() time.Time
}

func NewLivenessHandler(version string) *LivenessHandler {
	return &LivenessHandler{
		version: version,
		started: time.Now(),
		now:     time.Now,
	}
}

// Check answers as long as the process can serve HTTP at all.
func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		response.RespondError(w, http.StatusRequestTimeout, err)
		return
	}

	now := h.now()
	response.RespondJSON(w, http.StatusOK, LivenessResponse{
		Status:    StatusPass,
		Timestamp: now,
		Version:   h.version,
		Uptime:    now.Sub(h.started).Truncate(time.Second).String(),
	})
}
