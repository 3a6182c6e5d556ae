package handlers

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"planets-proxy/internal/planet"
	"planets-proxy/internal/shared/errors"
	"planets-proxy/internal/shared/requestid"
	"planets-proxy/internal/shared/response"
	"planets-proxy/internal/swapi"
)

const (
	maxBodyBytes = 1 << 20 // 1 MB

	MessageDataTooLarge = "the planet data is too large"
)

type PlanetHandler struct {
	service *planet.Service
}

func NewPlanetHandler(service *planet.Service) *PlanetHandler {
	return &PlanetHandler{service: service}
}

func (h *PlanetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_planet", "request_id", requestid.FromContext(ctx))

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapNotFound(swapi.MessagePlanetNotFound, err))
		return
	}

	body, err := h.service.Fetch(ctx, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, body)
}

func (h *PlanetHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "create_planet", "request_id", requestid.FromContext(ctx))

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	data, err := dataParam(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			response.Error(w, r, logger, errors.WrapValidation(MessageDataTooLarge, err))
			return
		}
		response.Error(w, r, logger, errors.WrapValidation(planet.MessageInvalidData, err))
		return
	}

	record, err := h.service.Create(ctx, data)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, record)
}

// dataParam reads the data field from the query string, then from a JSON
// body, then from a form body.
func dataParam(r *http.Request) (string, error) {
	if data := r.URL.Query().Get("data"); data != "" {
		return data, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var payload struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return "", err
		}
		data := bytes.TrimSpace(payload.Data)
		if bytes.Equal(data, []byte("null")) {
			return "", nil
		}
		return string(data), nil
	}

	if err := r.ParseForm(); err != nil {
		return "", err
	}
	return r.PostForm.Get("data"), nil
}
