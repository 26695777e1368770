package services

import (
	"context"

	"github.com/google/uuid"

	"rehla/internal/models/db_models"
	"rehla/internal/models/request_models"
	"rehla/internal/models/response_models"
	"rehla/internal/repositories"
	"rehla/pkg/utils"
)

type PlaceServiceInterface interface {
	CreatePlace(ctx context.Context, adminID string, req request_models.CreatePlaceRequest) (*response_models.PlaceResponse, error)
	UpdatePlace(ctx context.Context, adminID string, placeID string, req request_models.CreatePlaceRequest) error
	DeletePlace(ctx context.Context, adminID string, placeID string) error
	GetPlaceByID(ctx context.Context, placeID string) (*response_models.PlaceResponse, error)
	ListPlaces(ctx context.Context, placeType string) ([]response_models.PlaceResponse, error)
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{placeRepo: placeRepo}
}

func (s *PlaceService) CreatePlace(ctx context.Context, adminID string, req request_models.CreatePlaceRequest) (*response_models.PlaceResponse, error) {
	creator, err := uuid.Parse(adminID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if req.Type != db_models.PlaceTypeGuestHouse && req.Type != db_models.PlaceTypeRestaurant {
		return nil, utils.ErrInvalidInput
	}

	place := &db_models.Place{
		Name:            req.Name,
		Type:            req.Type,
		Address:         req.Address,
		Governorate:     req.Governorate,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Images:          req.Images,
		Description:     req.Description,
		CreatedBy:       creator,
		Rooms:           req.Rooms,
		PricePerNight:   req.PricePerNight,
		Breakfast:       req.Breakfast,
		Wifi:            req.Wifi,
		AirConditioning: req.AirConditioning,
		Cuisine:         req.Cuisine,
		PricePerTable:   req.PricePerTable,
		ChairsPerTable:  req.ChairsPerTable,
	}

	// Guest houses advertise availability from their room count; restaurants
	// have no tracked capacity and start available.
	if place.Type == db_models.PlaceTypeGuestHouse {
		place.IsAvailable = place.Rooms > 0
	} else {
		place.IsAvailable = true
	}

	if _, err := s.placeRepo.CreatePlace(ctx, place); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := ToPlaceResponse(place)
	return &resp, nil
}

func (s *PlaceService) UpdatePlace(ctx context.Context, adminID string, placeID string, req request_models.CreatePlaceRequest) error {
	place, err := s.ownedPlace(ctx, adminID, placeID)
	if err != nil {
		return err
	}

	place.Name = req.Name
	place.Address = req.Address
	place.Governorate = req.Governorate
	place.Latitude = req.Latitude
	place.Longitude = req.Longitude
	place.Images = req.Images
	place.Description = req.Description
	place.Rooms = req.Rooms
	place.PricePerNight = req.PricePerNight
	place.Breakfast = req.Breakfast
	place.Wifi = req.Wifi
	place.AirConditioning = req.AirConditioning
	place.Cuisine = req.Cuisine
	place.PricePerTable = req.PricePerTable
	place.ChairsPerTable = req.ChairsPerTable
	if place.Type == db_models.PlaceTypeGuestHouse {
		place.IsAvailable = place.Rooms > 0
	}

	if err := s.placeRepo.UpdatePlace(ctx, place); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PlaceService) DeletePlace(ctx context.Context, adminID string, placeID string) error {
	place, err := s.ownedPlace(ctx, adminID, placeID)
	if err != nil {
		return err
	}
	if err := s.placeRepo.DeletePlace(ctx, place.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PlaceService) GetPlaceByID(ctx context.Context, placeID string) (*response_models.PlaceResponse, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	resp := ToPlaceResponse(place)
	return &resp, nil
}

func (s *PlaceService) ListPlaces(ctx context.Context, placeType string) ([]response_models.PlaceResponse, error) {
	var (
		places []db_models.Place
		err    error
	)
	if placeType == "" {
		places, err = s.placeRepo.List(ctx)
	} else {
		places, err = s.placeRepo.ListByType(ctx, placeType)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PlaceResponse, 0, len(places))
	for i := range places {
		out = append(out, ToPlaceResponse(&places[i]))
	}
	return out, nil
}

// ownedPlace loads a place and verifies the caller created it. A place owned
// by someone else reads as not found rather than forbidden.
func (s *PlaceService) ownedPlace(ctx context.Context, adminID string, placeID string) (*db_models.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if place == nil || place.CreatedBy.String() != adminID {
		return nil, utils.ErrPlaceNotFound
	}
	return place, nil
}

func ToPlaceResponse(place *db_models.Place) response_models.PlaceResponse {
	return response_models.PlaceResponse{
		ID:             place.ID.String(),
		Name:           place.Name,
		Type:           place.Type,
		Address:        place.Address,
		Governorate:    place.Governorate,
		Latitude:       place.Latitude,
		Longitude:      place.Longitude,
		Images:         place.Images,
		Description:    place.Description,
		Rooms:          place.Rooms,
		PricePerNight:  place.PricePerNight,
		Cuisine:        place.Cuisine,
		PricePerTable:  place.PricePerTable,
		ChairsPerTable: place.ChairsPerTable,
		IsAvailable:    place.IsAvailable,
	}
}
