// Package handler provides HTTP handlers for the OfficeCast proxy API.
package handler

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/officecast/officecast/internal/api/response"
	"github.com/officecast/officecast/internal/proxy"
	"github.com/officecast/officecast/internal/weather"
)

// Validation and error messages exposed on the wire.
const (
	msgInvalidCoordinates = "Valid lat and lon query parameters are required."
	msgOutOfRange         = "lat/lon are out of range."
	msgMissingCredential  = "OpenWeatherMap API key is not configured."
	msgMethodNotAllowed   = "Only GET is supported for this endpoint."
	msgNotFound           = "Not found."
)

// WeatherHandler serves cached weather lookups.
type WeatherHandler struct {
	service *proxy.Service
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(service *proxy.Service) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// GetWeather handles GET /weather?lat=<float>&lon=<float>.
// Validation runs strictly in order: coordinates parse, coordinates range,
// credential presence. Only then is the cache consulted, so an invalid
// request can never reach the upstream provider.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	lat, ok := parseFiniteFloat(r.URL.Query().Get("lat"))
	if !ok {
		response.BadRequest(w, msgInvalidCoordinates)
		return
	}
	lon, ok := parseFiniteFloat(r.URL.Query().Get("lon"))
	if !ok {
		response.BadRequest(w, msgInvalidCoordinates)
		return
	}

	if err := weather.ValidateCoordinates(lat, lon); err != nil {
		response.BadRequest(w, msgOutOfRange)
		return
	}

	if !h.service.Configured() {
		response.InternalError(w, msgMissingCredential)
		return
	}

	payload, hit, err := h.service.Lookup(r.Context(), lat, lon)
	if err != nil {
		var upstreamErr *weather.UpstreamError
		if errors.As(err, &upstreamErr) {
			response.BadGateway(w, fmt.Sprintf("OpenWeatherMap request failed: %d %s",
				upstreamErr.StatusCode, upstreamErr.Body))
			return
		}
		response.BadGateway(w, fmt.Sprintf("OpenWeatherMap request failed: %s", err))
		return
	}

	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	response.Raw(w, http.StatusOK, payload)
}

// MethodNotAllowed is the router's fallback for non-GET methods.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	response.MethodNotAllowed(w, msgMethodNotAllowed)
}

// NotFound is the router's fallback for unknown paths. The method check
// still runs first so a POST to an unknown path reports 405, matching the
// validation order of the endpoint contract.
func NotFound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowed(w, r)
		return
	}
	response.NotFound(w, msgNotFound)
}

// parseFiniteFloat parses a query parameter as a finite float64.
// strconv accepts "Inf" and "NaN", neither of which is a coordinate.
func parseFiniteFloat(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
