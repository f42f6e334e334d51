package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"onboarding/internal/adapters/http/response"
	"onboarding/internal/platform/health"
	"onboarding/internal/platform/logger"
	"onboarding/internal/version"
)

const readinessTimeout = 5 * time.Second

type ReadinessHandler struct {
	build         version.BuildInfo
	healthManager health.ManagerInterface
}

func NewReadinessHandler(build version.BuildInfo, healthManager health.ManagerInterface) *ReadinessHandler {
	return &ReadinessHandler{
		build:         build,
		healthManager: healthManager,
	}
}

// Check reports fail (503) when any store is unhealthy and warn when one is
// degraded.
func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	log := logger.FromContext(ctx)
	results := h.healthManager.CheckAll(ctx)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	overall := StatusPass
	checks := make(map[string][]CheckDetail, len(results))
	var notes []string
	now := time.Now()

	for _, name := range names {
		detail := detailOf(name, results[name], now)
		checks[name] = []CheckDetail{detail}
		overall = overall.worse(detail.Status)
		if note := detail.note(); note != "" {
			notes = append(notes, note)
		}
	}

	statusCode := http.StatusOK
	if overall == StatusFail {
		statusCode = http.StatusServiceUnavailable
		log.Warn("Readiness check failed", logger.Int("failing", len(notes)))
	}

	response.RespondJSON(w, statusCode, ReadinessResponse{
		Status:    overall,
		Version:   h.build.Version,
		ReleaseID: h.build.GitCommit,
		Checks:    checks,
		Notes:     notes,
	})
}
