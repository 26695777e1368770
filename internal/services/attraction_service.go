package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"rehla/internal/models/db_models"
	"rehla/internal/models/request_models"
	"rehla/internal/models/response_models"
	"rehla/internal/repositories"
	"rehla/pkg/utils"
)

type AttractionServiceInterface interface {
	CreateAttraction(ctx context.Context, req request_models.CreateAttractionRequest) (*response_models.AttractionResponse, error)
	UpdateAttraction(ctx context.Context, attractionID string, req request_models.CreateAttractionRequest) error
	DeleteAttraction(ctx context.Context, attractionID string) error
	GetAttractionByID(ctx context.Context, attractionID string) (*response_models.AttractionResponse, error)
	ListAttractions(ctx context.Context, city string) ([]response_models.AttractionResponse, error)
	SearchAttractions(ctx context.Context, req request_models.SearchAttractionsRequest) ([]response_models.AttractionResponse, error)
}

type AttractionService struct {
	attractionRepo repositories.AttractionRepository
	embeddingRepo  repositories.AttractionEmbeddingRepository
	aiClient       utils.AIClientInterface
}

func NewAttractionService(
	attractionRepo repositories.AttractionRepository,
	embeddingRepo repositories.AttractionEmbeddingRepository,
	aiClient utils.AIClientInterface,
) AttractionServiceInterface {
	return &AttractionService{
		attractionRepo: attractionRepo,
		embeddingRepo:  embeddingRepo,
		aiClient:       aiClient,
	}
}

func (s *AttractionService) CreateAttraction(ctx context.Context, req request_models.CreateAttractionRequest) (*response_models.AttractionResponse, error) {
	attraction := &db_models.Attraction{
		Name:        req.Name,
		Description: req.Description,
		City:        strings.ToLower(strings.TrimSpace(req.City)),
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Image:       req.Image,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	}

	if _, err := s.attractionRepo.CreateAttraction(ctx, attraction); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Indexing failures must not lose the attraction itself; the row can be
	// re-indexed later.
	if err := s.indexAttraction(ctx, attraction); err != nil {
		log.Printf("failed to index attraction %s for semantic search: %v", attraction.ID, err)
	}

	resp := toAttractionResponse(attraction)
	return &resp, nil
}

// indexAttraction embeds the attraction's searchable text and stores the
// vector for semantic lookup.
func (s *AttractionService) indexAttraction(ctx context.Context, attraction *db_models.Attraction) error {
	text := strings.Join([]string{attraction.Name, attraction.Category, attraction.City, attraction.Description}, ". ")

	vector, err := s.aiClient.GetEmbedding(ctx, text)
	if err != nil {
		return err
	}

	return s.embeddingRepo.CreateEmbedding(db_models.AttractionEmbedding{
		AttractionID: attraction.ID.String(),
		Name:         attraction.Name,
		City:         attraction.City,
		Category:     attraction.Category,
		Tags:         []string{attraction.Category},
		Embedding:    vector,
	})
}

func (s *AttractionService) UpdateAttraction(ctx context.Context, attractionID string, req request_models.CreateAttractionRequest) error {
	attraction, err := s.attractionRepo.GetByID(ctx, attractionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if attraction == nil {
		return utils.ErrAttractionNotFound
	}

	attraction.Name = req.Name
	attraction.Description = req.Description
	attraction.City = strings.ToLower(strings.TrimSpace(req.City))
	attraction.Category = req.Category
	attraction.Latitude = req.Latitude
	attraction.Longitude = req.Longitude
	attraction.Image = req.Image
	attraction.OpeningTime = req.OpeningTime
	attraction.ClosingTime = req.ClosingTime

	if err := s.attractionRepo.UpdateAttraction(ctx, attraction); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AttractionService) DeleteAttraction(ctx context.Context, attractionID string) error {
	id, err := uuid.Parse(attractionID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	attraction, err := s.attractionRepo.GetByID(ctx, attractionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if attraction == nil {
		return utils.ErrAttractionNotFound
	}
	if err := s.attractionRepo.DeleteAttraction(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AttractionService) GetAttractionByID(ctx context.Context, attractionID string) (*response_models.AttractionResponse, error) {
	attraction, err := s.attractionRepo.GetByID(ctx, attractionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attraction == nil {
		return nil, utils.ErrAttractionNotFound
	}
	resp := toAttractionResponse(attraction)
	return &resp, nil
}

func (s *AttractionService) ListAttractions(ctx context.Context, city string) ([]response_models.AttractionResponse, error) {
	var (
		attractions []db_models.Attraction
		err         error
	)
	if city == "" {
		attractions, err = s.attractionRepo.List(ctx)
	} else {
		attractions, err = s.attractionRepo.FindByCity(ctx, city)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toAttractionResponses(attractions), nil
}

// SearchAttractions embeds the free-text query and ranks catalog attractions
// by vector similarity, preserving the similarity order of the matches.
func (s *AttractionService) SearchAttractions(ctx context.Context, req request_models.SearchAttractionsRequest) ([]response_models.AttractionResponse, error) {
	vector, err := s.aiClient.GetEmbedding(ctx, req.Query)
	if err != nil {
		log.Printf("query embedding error: %v", err)
		return nil, utils.ErrGenerationUnavailable
	}

	matches, err := s.embeddingRepo.ListByVector(vector, strings.ToLower(strings.TrimSpace(req.City)))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(matches) == 0 {
		return []response_models.AttractionResponse{}, nil
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.AttractionID)
	}

	attractions, err := s.attractionRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byID := make(map[string]*db_models.Attraction, len(attractions))
	for i := range attractions {
		byID[attractions[i].ID.String()] = &attractions[i]
	}

	out := make([]response_models.AttractionResponse, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, toAttractionResponse(a))
		}
	}
	return out, nil
}

func toAttractionResponse(a *db_models.Attraction) response_models.AttractionResponse {
	return response_models.AttractionResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		City:        a.City,
		Category:    a.Category,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
		Image:       a.Image,
		OpeningTime: a.OpeningTime,
		ClosingTime: a.ClosingTime,
	}
}

func toAttractionResponses(attractions []db_models.Attraction) []response_models.AttractionResponse {
	out := make([]response_models.AttractionResponse, 0, len(attractions))
	for i := range attractions {
		out = append(out, toAttractionResponse(&attractions[i]))
	}
	return out
}
