package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/teamdir/internal/directory/store"
	"github.com/aussiebroadwan/teamdir/pkg/httpx"
	"github.com/aussiebroadwan/teamdir/pkg/teamsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and the loaded team data snapshot
//	@Description	Reports degraded with 503 until the first successful load
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	teamsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	teamsdk.HealthResponse	"status, uptime, version, checks - no data loaded"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &teamsdk.HealthChecks{Data: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		info, err := st.Current(r.Context())
		if err != nil {
			checks.Data = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		} else {
			checks.Source = info.Source
			checks.Members = info.Count
			if !info.LoadedAt.IsZero() {
				loadedAt := info.LoadedAt
				checks.LoadedAt = &loadedAt
			}
		}

		response := teamsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
