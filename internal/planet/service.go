package planet

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"planets-proxy/internal/shared/errors"
)

const (
	MessageInvalidData      = "the planet data is not valid"
	MessageInvalidID        = "the planet ID is not valid"
	MessageAlreadyExists    = "a planet with this ID already exists"
	MessageInvalidName      = "the planet name is not valid"
	messageParamNotAccepted = "the parameter %s is not accepted"
)

// Source is the remote source of truth for planets
type Source interface {
	GetPlanet(ctx context.Context, id int) (json.RawMessage, error)
}

type Service struct {
	source Source
	logger *slog.Logger
}

func NewService(source Source, logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service")

	return &Service{
		source: source,
		logger: logger,
	}
}

// Fetch returns the remote planet body for id
func (s *Service) Fetch(ctx context.Context, id int) (json.RawMessage, error) {
	return s.source.GetPlanet(ctx, id)
}

// Exists reports whether the remote source knows a planet with id.
// Only transport failures are returned as errors.
func (s *Service) Exists(ctx context.Context, id int) (bool, error) {
	_, err := s.source.GetPlanet(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errors.ErrorTypeNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Create validates a planet payload and returns it unchanged. Nothing is stored.
func (s *Service) Create(ctx context.Context, raw string) (*Record, error) {
	logger := s.logger.With("component", "planet_service", "operation", "create_planet")

	record, err := DecodeRecord(raw)
	if err != nil {
		return nil, errors.WrapValidation(MessageInvalidData, err)
	}

	for _, key := range record.Keys() {
		if !slices.Contains(AcceptedFields, key) {
			return nil, errors.Validationf(messageParamNotAccepted, key)
		}
	}

	id, ok := record.ID()
	if !ok {
		return nil, errors.Validation(MessageInvalidID)
	}
	logger = logger.With("planet_id", id)

	exists, err := s.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict(MessageAlreadyExists)
	}

	if name, ok := record.Name(); !ok || len(name) < 1 {
		return nil, errors.Validation(MessageInvalidName)
	}

	logger.Info("Planet validated", "fields", record.Len())
	return record, nil
}
