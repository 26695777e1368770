package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rehla/internal/models/db_models"
	"rehla/internal/models/request_models"
	"rehla/pkg/utils"
)

type stubPlaceRepo struct {
	places []db_models.Place
}

func (s *stubPlaceRepo) CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (s *stubPlaceRepo) UpdatePlace(ctx context.Context, place *db_models.Place) error { return nil }
func (s *stubPlaceRepo) DeletePlace(ctx context.Context, id uuid.UUID) error           { return nil }
func (s *stubPlaceRepo) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	for i := range s.places {
		if s.places[i].ID.String() == id {
			return &s.places[i], nil
		}
	}
	return nil, nil
}
func (s *stubPlaceRepo) List(ctx context.Context) ([]db_models.Place, error) { return s.places, nil }
func (s *stubPlaceRepo) ListByType(ctx context.Context, placeType string) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range s.places {
		if p.Type == placeType {
			out = append(out, p)
		}
	}
	return out, nil
}
func (s *stubPlaceRepo) FindByTypes(ctx context.Context, types []string) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range s.places {
		for _, t := range types {
			if p.Type == t {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}
func (s *stubPlaceRepo) AllocateRooms(ctx context.Context, placeID uuid.UUID, rooms int) error {
	return nil
}
func (s *stubPlaceRepo) ReleaseRooms(ctx context.Context, placeID uuid.UUID, rooms int) error {
	return nil
}

type stubAttractionRepo struct {
	attractions []db_models.Attraction
}

func (s *stubAttractionRepo) CreateAttraction(ctx context.Context, attraction *db_models.Attraction) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (s *stubAttractionRepo) UpdateAttraction(ctx context.Context, attraction *db_models.Attraction) error {
	return nil
}
func (s *stubAttractionRepo) DeleteAttraction(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubAttractionRepo) GetByID(ctx context.Context, id string) (*db_models.Attraction, error) {
	return nil, nil
}
func (s *stubAttractionRepo) List(ctx context.Context) ([]db_models.Attraction, error) {
	return s.attractions, nil
}
func (s *stubAttractionRepo) FindByCity(ctx context.Context, city string) ([]db_models.Attraction, error) {
	var out []db_models.Attraction
	for _, a := range s.attractions {
		if strings.EqualFold(a.City, city) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (s *stubAttractionRepo) ListByIDs(ctx context.Context, ids []string) ([]db_models.Attraction, error) {
	return nil, nil
}

type stubAIClient struct {
	response   string
	err        error
	userPrompt string
	sysPrompt  string
}

func (s *stubAIClient) GenerateItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.sysPrompt = systemPrompt
	s.userPrompt = userPrompt
	return s.response, s.err
}
func (s *stubAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.Vector{}, nil
}
func (s *stubAIClient) Close() error { return nil }

func newTestPlace(name, placeType string, nightly, perTable float64) db_models.Place {
	p := db_models.Place{
		Name:          name,
		Type:          placeType,
		Latitude:      24.09,
		Longitude:     32.89,
		Images:        []string{"https://img.example/" + name + ".jpg"},
		Description:   name + " description",
		PricePerNight: nightly,
		PricePerTable: perTable,
		Rooms:         5,
		IsAvailable:   true,
	}
	p.ID = uuid.New()
	return p
}

func newTestAttraction(name, city string) db_models.Attraction {
	a := db_models.Attraction{
		Name:        name,
		City:        city,
		Category:    "historical",
		Latitude:    24.08,
		Longitude:   32.87,
		Image:       "https://img.example/" + name + ".jpg",
		Description: name + " description",
	}
	a.ID = uuid.New()
	return a
}

func newTestService(placeRepo *stubPlaceRepo, attractionRepo *stubAttractionRepo, ai *stubAIClient) ItineraryServiceInterface {
	return NewItineraryService(placeRepo, attractionRepo, ai, utils.NewHeuristicRepairer())
}

func validRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		Destination:  "Aswan",
		Budget:       2000,
		CheckInDate:  "2024-03-01",
		CheckOutDate: "2024-03-03",
		Adults:       10,
		Children:     2,
	}
}

func TestGenerateItineraryRejectsBadRequests(t *testing.T) {
	svc := newTestService(&stubPlaceRepo{}, &stubAttractionRepo{}, &stubAIClient{})

	tests := []struct {
		name    string
		mutate  func(*request_models.GenerateItineraryRequest)
		wantErr error
	}{
		{"unsupported city", func(r *request_models.GenerateItineraryRequest) { r.Destination = "cairo" }, utils.ErrInvalidDestination},
		{"empty city", func(r *request_models.GenerateItineraryRequest) { r.Destination = "" }, utils.ErrInvalidDestination},
		{"negative budget", func(r *request_models.GenerateItineraryRequest) { r.Budget = -1 }, utils.ErrInvalidBudget},
		{"malformed check-in", func(r *request_models.GenerateItineraryRequest) { r.CheckInDate = "01/03/2024" }, utils.ErrInvalidDateRange},
		{"malformed check-out", func(r *request_models.GenerateItineraryRequest) { r.CheckOutDate = "soon" }, utils.ErrInvalidDateRange},
		{"checkout before checkin", func(r *request_models.GenerateItineraryRequest) { r.CheckOutDate = "2024-02-28" }, utils.ErrInvalidDateRange},
		{"zero nights", func(r *request_models.GenerateItineraryRequest) { r.CheckOutDate = "2024-03-01" }, utils.ErrInvalidDateRange},
		{"over seven days", func(r *request_models.GenerateItineraryRequest) { r.CheckOutDate = "2024-03-09" }, utils.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.GenerateItinerary(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateItineraryDestinationCaseInsensitive(t *testing.T) {
	ai := &stubAIClient{response: `{"days": []}`}
	svc := newTestService(&stubPlaceRepo{}, &stubAttractionRepo{}, ai)

	req := validRequest()
	req.Destination = "  LUXOR  "

	_, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, ai.userPrompt, "Destination: luxor")
}

func TestGenerateItineraryFullPipeline(t *testing.T) {
	cheapHouse := newTestPlace("Nile Rest House", db_models.PlaceTypeGuestHouse, 300, 0)
	dearHouse := newTestPlace("Cataract View", db_models.PlaceTypeGuestHouse, 900, 0)
	restaurant := newTestPlace("El Dokka", db_models.PlaceTypeRestaurant, 0, 150)
	temple := newTestAttraction("Philae Temple", "aswan")

	placeRepo := &stubPlaceRepo{places: []db_models.Place{dearHouse, cheapHouse, restaurant}}
	attractionRepo := &stubAttractionRepo{attractions: []db_models.Attraction{temple}}

	// Attraction referenced by id, restaurant by wrong-case name with no table
	// count, plus one hallucinated stop. Second day is missing from the model
	// output entirely.
	ai := &stubAIClient{response: fmt.Sprintf("```json\n"+`{
  "days": [
    {
      "date": "2024-03-01",
      "schedule": [
        {"time": "08:00 - 11:00", "type": "attraction", "id": "%s", "name": "wrong name"},
        {"time": "13:00 - 14:00", "type": "restaurant", "id": "bogus-id", "name": "EL DOKKA"},
        {"time": "15:00 - 16:00", "type": "attraction", "id": "made-up", "name": "Invented Temple"}
      ]
    }
  ],
  "suggest": {
    "guestHouses": [
      {"id": "%s", "name": "Nile Rest House", "rooms": 4}
    ]
  }
}`+"\n```", temple.ID, cheapHouse.ID)}

	svc := newTestService(placeRepo, attractionRepo, ai)

	itinerary, err := svc.GenerateItinerary(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, itinerary.Days, 2)
	assert.Equal(t, "2024-03-01", itinerary.Days[0].Date)
	assert.Equal(t, "2024-03-02", itinerary.Days[1].Date)
	assert.Empty(t, itinerary.Days[1].Schedule)

	schedule := itinerary.Days[0].Schedule
	require.Len(t, schedule, 3)

	// Resolved by id: authoritative catalog fields win over the model's name.
	assert.Equal(t, "Philae Temple", schedule[0].Name)
	assert.Equal(t, temple.Description, schedule[0].Description)
	assert.Equal(t, temple.Image, schedule[0].Image)

	// Resolved by case-insensitive name after the id missed.
	require.NotNil(t, schedule[1].Price)
	assert.Equal(t, restaurant.ID.String(), schedule[1].ID)
	assert.Equal(t, "El Dokka", schedule[1].Name)
	assert.Equal(t, 150.0, *schedule[1].Price)
	// 12 travelers, one table per 5.
	require.NotNil(t, schedule[1].Tables)
	assert.Equal(t, 3, *schedule[1].Tables)

	// Unresolved items pass through untouched.
	assert.Equal(t, "made-up", schedule[2].ID)
	assert.Equal(t, "Invented Temple", schedule[2].Name)
	assert.Empty(t, schedule[2].Description)

	// Guest houses ranked by ascending nightly price; the model's room hint is
	// kept for the place it named, the rest fall back to the computed count.
	require.Len(t, itinerary.Suggest.GuestHouses, 2)
	assert.Equal(t, cheapHouse.ID.String(), itinerary.Suggest.GuestHouses[0].ID)
	assert.Equal(t, 4, itinerary.Suggest.GuestHouses[0].Rooms)
	assert.Equal(t, dearHouse.ID.String(), itinerary.Suggest.GuestHouses[1].ID)
	assert.Equal(t, RoomsNeeded(10, 2), itinerary.Suggest.GuestHouses[1].Rooms)
}

func TestGenerateItineraryBudgetFiltersContext(t *testing.T) {
	affordable := newTestPlace("Budget Inn", db_models.PlaceTypeGuestHouse, 500, 0)
	priceless := newTestPlace("Unpriced Camp", db_models.PlaceTypeGuestHouse, 0, 0)
	luxury := newTestPlace("Grand Palace", db_models.PlaceTypeGuestHouse, 5000, 0)

	placeRepo := &stubPlaceRepo{places: []db_models.Place{affordable, priceless, luxury}}
	ai := &stubAIClient{response: `{"days": []}`}
	svc := newTestService(placeRepo, &stubAttractionRepo{}, ai)

	req := validRequest()
	req.Budget = 1000

	_, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, ai.userPrompt, affordable.ID.String())
	assert.Contains(t, ai.userPrompt, priceless.ID.String())
	assert.NotContains(t, ai.userPrompt, luxury.ID.String())
}

func TestGenerateItineraryZeroBudgetKeepsEverything(t *testing.T) {
	luxury := newTestPlace("Grand Palace", db_models.PlaceTypeGuestHouse, 5000, 0)

	placeRepo := &stubPlaceRepo{places: []db_models.Place{luxury}}
	ai := &stubAIClient{response: `{"days": []}`}
	svc := newTestService(placeRepo, &stubAttractionRepo{}, ai)

	req := validRequest()
	req.Budget = 0

	_, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, ai.userPrompt, luxury.ID.String())
	assert.Contains(t, ai.userPrompt, "Budget/day: No limit")
}

func TestGenerateItineraryCapsContextSize(t *testing.T) {
	placeRepo := &stubPlaceRepo{}
	for i := 0; i < maxContextPlaces+3; i++ {
		placeRepo.places = append(placeRepo.places,
			newTestPlace(fmt.Sprintf("House %02d", i), db_models.PlaceTypeGuestHouse, 100, 0))
	}
	attractionRepo := &stubAttractionRepo{}
	for i := 0; i < maxContextAttractions+5; i++ {
		attractionRepo.attractions = append(attractionRepo.attractions,
			newTestAttraction(fmt.Sprintf("Temple %02d", i), "aswan"))
	}

	ai := &stubAIClient{response: `{"days": []}`}
	svc := newTestService(placeRepo, attractionRepo, ai)

	_, err := svc.GenerateItinerary(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Contains(t, ai.userPrompt, placeRepo.places[maxContextPlaces-1].ID.String())
	assert.NotContains(t, ai.userPrompt, placeRepo.places[maxContextPlaces].ID.String())
	assert.Contains(t, ai.userPrompt, attractionRepo.attractions[maxContextAttractions-1].ID.String())
	assert.NotContains(t, ai.userPrompt, attractionRepo.attractions[maxContextAttractions].ID.String())
}

func TestGenerateItineraryDefaultsTravelers(t *testing.T) {
	ai := &stubAIClient{response: `{"days": []}`}
	svc := newTestService(&stubPlaceRepo{}, &stubAttractionRepo{}, ai)

	req := validRequest()
	req.Adults = 0
	req.Children = -3

	_, err := svc.GenerateItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, ai.sysPrompt, "2 adult(s)")
	assert.Contains(t, ai.sysPrompt, "total 2 people")
}

func TestGenerateItineraryModelUnavailable(t *testing.T) {
	ai := &stubAIClient{err: errors.New("rate limited")}
	svc := newTestService(&stubPlaceRepo{}, &stubAttractionRepo{}, ai)

	_, err := svc.GenerateItinerary(context.Background(), validRequest())
	assert.ErrorIs(t, err, utils.ErrGenerationUnavailable)
}

func TestGenerateItineraryUnparsableOutput(t *testing.T) {
	ai := &stubAIClient{response: "I am sorry, I cannot plan this trip."}
	svc := newTestService(&stubPlaceRepo{}, &stubAttractionRepo{}, ai)

	_, err := svc.GenerateItinerary(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrUnparsableGeneration)

	var parseErr *utils.GenerationParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotEmpty(t, parseErr.Preview)
}

func TestGenerateItineraryShapeErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"missing days", `{"suggest": {"guestHouses": []}}`},
		{"days not an array", `{"days": "monday"}`},
		{"days as object", `{"days": {"date": "2024-03-01"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &stubAIClient{response: tt.response}
			svc := newTestService(&stubPlaceRepo{}, &stubAttractionRepo{}, ai)

			_, err := svc.GenerateItinerary(context.Background(), validRequest())
			assert.ErrorIs(t, err, utils.ErrInvalidGenerationShape)
		})
	}
}

func TestGenerateItineraryRealignsMisdatedDays(t *testing.T) {
	ai := &stubAIClient{response: `{
  "days": [
    {"date": "2030-01-01", "schedule": [{"time": "08:00", "type": "attraction", "id": "a", "name": "first"}]},
    {"date": "2030-01-02", "schedule": [{"time": "09:00", "type": "attraction", "id": "b", "name": "second"}]},
    {"date": "2030-01-03", "schedule": [{"time": "10:00", "type": "attraction", "id": "c", "name": "extra"}]}
  ]
}`}
	svc := newTestService(&stubPlaceRepo{}, &stubAttractionRepo{}, ai)

	itinerary, err := svc.GenerateItinerary(context.Background(), validRequest())
	require.NoError(t, err)

	// Requested span wins over whatever dates the model used; the third model
	// day has nowhere to go and is dropped.
	require.Len(t, itinerary.Days, 2)
	assert.Equal(t, "2024-03-01", itinerary.Days[0].Date)
	assert.Equal(t, "first", itinerary.Days[0].Schedule[0].Name)
	assert.Equal(t, "2024-03-02", itinerary.Days[1].Date)
	assert.Equal(t, "second", itinerary.Days[1].Schedule[0].Name)
}
