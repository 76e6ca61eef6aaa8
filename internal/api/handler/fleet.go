package handler

import (
	"context"
	"net/http"

	"github.com/officecast/officecast/internal/api/response"
	"github.com/officecast/officecast/internal/fleet"
	"github.com/officecast/officecast/internal/office"
	"github.com/officecast/officecast/internal/view"
)

const msgInvalidUnit = "Unsupported unit preference."

// FleetService is the slice of the fleet fetcher the handlers need.
type FleetService interface {
	Snapshot() fleet.Snapshot
	Offices() []office.Office
	Refresh(ctx context.Context)
}

// FleetHandler serves the dashboard's fleet view.
type FleetHandler struct {
	service   FleetService
	assembler *view.Assembler
}

// NewFleetHandler creates a new FleetHandler.
func NewFleetHandler(service FleetService, assembler *view.Assembler) *FleetHandler {
	return &FleetHandler{service: service, assembler: assembler}
}

// GetFleet handles GET /v1/fleet?temp=<C|F>&wind=<m/s|mph|km/h>.
// Omitted preferences default to metric.
func (h *FleetHandler) GetFleet(w http.ResponseWriter, r *http.Request) {
	pref, ok := parsePreference(r)
	if !ok {
		response.BadRequest(w, msgInvalidUnit)
		return
	}

	model := h.assembler.Assemble(h.service.Offices(), h.service.Snapshot(), pref)
	response.JSON(w, http.StatusOK, model)
}

// GetSnapshot handles GET /v1/fleet/snapshot - the raw per-office state
// without display formatting.
func (h *FleetHandler) GetSnapshot(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Snapshot())
}

// RefreshFleet handles POST /v1/fleet/refresh - a manual refresh trigger.
// The cycle runs in the background; 202 acknowledges the trigger without
// waiting for every office to settle.
func (h *FleetHandler) RefreshFleet(w http.ResponseWriter, _ *http.Request) {
	go h.service.Refresh(context.Background())
	response.JSON(w, http.StatusAccepted, map[string]string{"status": "refresh started"})
}

func parsePreference(r *http.Request) (view.Preference, bool) {
	pref := view.Preference{
		Temperature: view.TempCelsius,
		Wind:        view.WindMps,
	}

	switch temp := r.URL.Query().Get("temp"); temp {
	case "", view.TempCelsius:
	case view.TempFahrenheit:
		pref.Temperature = view.TempFahrenheit
	default:
		return view.Preference{}, false
	}

	switch wind := r.URL.Query().Get("wind"); wind {
	case "", view.WindMps:
	case view.WindMph, view.WindKph:
		pref.Wind = wind
	default:
		return view.Preference{}, false
	}

	return pref, true
}
