package service

import (
	"context"
	"strings"

	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
)

// DeliveryService exposes whichever delivery lookup the configured variant
// supports: the zone list or the per-city date preview.
type DeliveryService interface {
	Mode() models.DeliveryMode
	Zones(ctx context.Context) ([]models.DeliveryZone, error)
	LookupDate(ctx context.Context, city string) (*models.DeliveryDateInfo, error)
}

type deliveryService struct {
	api  DeliveryAPI
	mode models.DeliveryMode
}

func NewDeliveryService(api DeliveryAPI, mode models.DeliveryMode) DeliveryService {
	return &deliveryService{api: api, mode: mode}
}

func (s *deliveryService) Mode() models.DeliveryMode {
	return s.mode
}

func (s *deliveryService) Zones(ctx context.Context) ([]models.DeliveryZone, error) {

	if s.mode != models.DeliveryModeZone {
		return nil, errors.BadRequestError("Delivery zones are not used by this storefront")
	}

	zones, err := s.api.ListDeliveryZones(ctx)
	if err != nil {
		return nil, backendError(err, "Failed to fetch delivery zones")
	}

	if zones == nil {
		zones = []models.DeliveryZone{}
	}

	return zones, nil
}

// LookupDate returns nil without calling the backend when city is blank or no
// backend is configured; callers treat that as "no preview".
func (s *deliveryService) LookupDate(ctx context.Context, city string) (*models.DeliveryDateInfo, error) {

	if s.mode != models.DeliveryModeCity {
		return nil, errors.BadRequestError("Delivery dates are looked up by zone in this storefront")
	}

	city = strings.TrimSpace(city)
	if city == "" || !s.api.HasBackend() {
		return nil, nil
	}

	info, err := s.api.DeliveryDate(ctx, city)
	if err != nil {
		return nil, backendError(err, "Failed to fetch delivery date")
	}

	return info, nil
}
