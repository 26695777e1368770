package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"rehla/internal/models/db_models"
	"rehla/internal/models/request_models"
	"rehla/internal/models/response_models"
	"rehla/internal/repositories"
	"rehla/pkg/utils"
)

// SupportedCities is the fixed destination set itineraries can be generated
// for.
var SupportedCities = []string{"aswan", "luxor"}

const (
	minTripDays = 1
	maxTripDays = 7

	maxContextPlaces      = 20
	maxContextAttractions = 25
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	placeRepo      repositories.PlaceRepository
	attractionRepo repositories.AttractionRepository
	aiClient       utils.AIClientInterface
	repairer       utils.JSONRepairer
}

func NewItineraryService(
	placeRepo repositories.PlaceRepository,
	attractionRepo repositories.AttractionRepository,
	aiClient utils.AIClientInterface,
	repairer utils.JSONRepairer,
) ItineraryServiceInterface {
	return &ItineraryService{
		placeRepo:      placeRepo,
		attractionRepo: attractionRepo,
		aiClient:       aiClient,
		repairer:       repairer,
	}
}

// normalizedRequest is the validated, request-scoped form of a generation
// request. It only lives for one pipeline invocation.
type normalizedRequest struct {
	City           string
	Budget         float64
	Interests      []string
	Adults         int
	Children       int
	TotalTravelers int
	DayCount       int
	Dates          []string
}

// candidateContext is the bounded catalog subset exposed to the generation
// model, together with its compact serialized form.
type candidateContext struct {
	Places         []db_models.Place
	Attractions    []db_models.Attraction
	PlacesCtx      string
	AttractionsCtx string
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error) {
	startTime := time.Now()

	norm, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	cand, err := s.buildContext(ctx, norm)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	log.Printf("ts: %s - candidate context ready: %d places, %d attractions",
		time.Since(startTime), len(cand.Places), len(cand.Attractions))

	raw, err := s.aiClient.GenerateItinerary(ctx, buildSystemPrompt(norm), buildUserPrompt(norm, cand))
	if err != nil {
		log.Printf("AI generation error: %v", err)
		return nil, utils.ErrGenerationUnavailable
	}
	log.Printf("ts: %s - raw generation received (%d bytes)", time.Since(startTime), len(raw))

	days, suggest, err := s.parseGenerated(raw)
	if err != nil {
		return nil, err
	}

	itinerary := s.reconcile(norm, cand, days, suggest)
	log.Printf("ts: %s - itinerary reconciled for %d day(s)", time.Since(startTime), len(itinerary.Days))

	return itinerary, nil
}

// normalizeRequest validates the raw request into a bounded day count and a
// canonical traveler total.
func normalizeRequest(req request_models.GenerateItineraryRequest) (*normalizedRequest, error) {
	city := strings.ToLower(strings.TrimSpace(req.Destination))

	supported := false
	for _, c := range SupportedCities {
		if city == c {
			supported = true
			break
		}
	}
	if !supported {
		return nil, utils.ErrInvalidDestination
	}

	if req.Budget < 0 {
		return nil, utils.ErrInvalidBudget
	}

	checkIn, err := utils.ParseISODate(req.CheckInDate)
	if err != nil {
		return nil, utils.ErrInvalidDateRange
	}
	checkOut, err := utils.ParseISODate(req.CheckOutDate)
	if err != nil {
		return nil, utils.ErrInvalidDateRange
	}

	dayCount := utils.DaySpan(checkIn, checkOut)
	if dayCount < minTripDays || dayCount > maxTripDays {
		return nil, utils.ErrInvalidDateRange
	}

	adults := req.Adults
	if adults <= 0 {
		adults = 2
	}
	children := req.Children
	if children < 0 {
		children = 0
	}

	return &normalizedRequest{
		City:           city,
		Budget:         req.Budget,
		Interests:      req.Interests,
		Adults:         adults,
		Children:       children,
		TotalTravelers: adults + children,
		DayCount:       dayCount,
		Dates:          utils.DateRange(checkIn, dayCount),
	}, nil
}

// buildContext selects the bounded candidate set. The two catalog reads are
// independent, so they run in parallel before the model call.
func (s *ItineraryService) buildContext(ctx context.Context, norm *normalizedRequest) (*candidateContext, error) {
	var (
		places      []db_models.Place
		attractions []db_models.Attraction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		places, err = s.placeRepo.FindByTypes(gctx, []string{db_models.PlaceTypeGuestHouse, db_models.PlaceTypeRestaurant})
		return err
	})
	g.Go(func() error {
		var err error
		attractions, err = s.attractionRepo.FindByCity(gctx, norm.City)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// A place survives the budget filter when it has no defined price or its
	// price fits the per-day ceiling; no budget passes everything.
	valid := make([]db_models.Place, 0, len(places))
	for _, p := range places {
		price := p.ContextPrice()
		if norm.Budget == 0 || price == 0 || price <= norm.Budget {
			valid = append(valid, p)
		}
	}

	if len(valid) > maxContextPlaces {
		valid = valid[:maxContextPlaces]
	}
	if len(attractions) > maxContextAttractions {
		attractions = attractions[:maxContextAttractions]
	}

	placeLines := make([]string, 0, len(valid))
	for _, p := range valid {
		placeLines = append(placeLines, fmt.Sprintf("%s|%s|%s|%g|%g|%g|%s",
			p.ID, p.Name, p.Type, p.ContextPrice(), p.Latitude, p.Longitude, p.FirstImage()))
	}

	attractionLines := make([]string, 0, len(attractions))
	for _, a := range attractions {
		attractionLines = append(attractionLines, fmt.Sprintf("%s|%s|%s|%s|%g|%g|%s",
			a.ID, a.Name, a.Category, a.Image, a.Latitude, a.Longitude, a.Hours()))
	}

	return &candidateContext{
		Places:         valid,
		Attractions:    attractions,
		PlacesCtx:      strings.Join(placeLines, "\n"),
		AttractionsCtx: strings.Join(attractionLines, "\n"),
	}, nil
}

func buildSystemPrompt(norm *normalizedRequest) string {
	travelers := fmt.Sprintf("%d adult(s)", norm.Adults)
	if norm.Children > 0 {
		travelers += fmt.Sprintf(", %d child(ren)", norm.Children)
	}

	return fmt.Sprintf(`You are an expert travel planner for Aswan and Luxor.
Return ONLY valid JSON. Never invent IDs.
Use only real IDs from the lists.
Travelers: %s -> total %d people
For restaurants -> add "tables": number (1 table per 5 people)
For guest houses in "suggest" -> add "rooms": number (1 room per 2 adults + 1 per 2 children)
Schedule: 08:00-20:00, max 5 activities/day, include 1-2 meals.`, travelers, norm.TotalTravelers)
}

func buildUserPrompt(norm *normalizedRequest, cand *candidateContext) string {
	budget := "No limit"
	if norm.Budget > 0 {
		budget = fmt.Sprintf("%g EGP", norm.Budget)
	}
	interests := "General"
	if len(norm.Interests) > 0 {
		interests = strings.Join(norm.Interests, ", ")
	}

	return fmt.Sprintf(`Destination: %s
Dates: %s (%d days)
Budget/day: %s
Interests: %s

PLACES (id|name|type|price|lat|lon|image):
%s

ATTRACTIONS (id|name|category|image|lat|lon|open-close):
%s

Return ONLY this JSON format:
{
  "days": [
    {
      "date": "%s",
      "schedule": [
        { "time": "08:00 - 11:00", "type": "attraction", "id": "...", "name": "..." },
        { "time": "19:00 - 21:00", "type": "restaurant", "id": "...", "name": "...", "tables": 1 }
      ]
    }
  ],
  "suggest": {
    "guestHouses": [
      { "id": "...", "name": "...", "rooms": 2 }
    ]
  }
}`, norm.City, strings.Join(norm.Dates, " to "), norm.DayCount, budget, interests,
		cand.PlacesCtx, cand.AttractionsCtx, norm.Dates[0])
}

// Model-output shapes, pre-reconciliation. Everything in here is untrusted.
type generatedItem struct {
	Time   string `json:"time"`
	Type   string `json:"type"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Tables int    `json:"tables"`
}

type generatedDay struct {
	Date     string          `json:"date"`
	Schedule []generatedItem `json:"schedule"`
}

type generatedSuggestion struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Rooms int    `json:"rooms"`
}

type generatedSuggest struct {
	GuestHouses []generatedSuggestion `json:"guestHouses"`
}

// parseGenerated repairs and parses the raw model text. A text that still
// fails to parse surfaces the repaired preview; a parsed document without a
// days sequence is a shape failure. Neither is ever papered over with an
// empty itinerary.
func (s *ItineraryService) parseGenerated(raw string) ([]generatedDay, *generatedSuggest, error) {
	repaired := s.repairer.Repair(raw)

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
		log.Printf("Final JSON parse failed: %v", err)
		return nil, nil, utils.NewGenerationParseError(repaired, err)
	}

	daysRaw, ok := doc["days"]
	if !ok {
		return nil, nil, utils.ErrInvalidGenerationShape
	}
	var days []generatedDay
	if err := json.Unmarshal(daysRaw, &days); err != nil {
		return nil, nil, utils.ErrInvalidGenerationShape
	}

	// The suggest block is a weak hint only; a malformed one is ignored.
	suggest := &generatedSuggest{}
	if suggestRaw, ok := doc["suggest"]; ok {
		_ = json.Unmarshal(suggestRaw, suggest)
	}

	return days, suggest, nil
}

// reconcile cross-references the untrusted schedule against the candidate
// catalog subset. Matching items get authoritative descriptive fields; items
// that resolve nowhere pass through unmodified rather than being dropped.
func (s *ItineraryService) reconcile(norm *normalizedRequest, cand *candidateContext, days []generatedDay, suggest *generatedSuggest) *response_models.Itinerary {
	placeByID := make(map[string]*db_models.Place, len(cand.Places))
	placeByName := make(map[string]*db_models.Place, len(cand.Places))
	for i := range cand.Places {
		p := &cand.Places[i]
		placeByID[p.ID.String()] = p
		placeByName[strings.ToLower(p.Name)] = p
	}
	attractionByID := make(map[string]*db_models.Attraction, len(cand.Attractions))
	attractionByName := make(map[string]*db_models.Attraction, len(cand.Attractions))
	for i := range cand.Attractions {
		a := &cand.Attractions[i]
		attractionByID[a.ID.String()] = a
		attractionByName[strings.ToLower(a.Name)] = a
	}

	dayByDate := make(map[string]generatedDay, len(days))
	for _, d := range days {
		if _, exists := dayByDate[d.Date]; !exists {
			dayByDate[d.Date] = d
		}
	}

	// Every requested day is present in request order regardless of what the
	// model returned; extra or misdated model days are realigned by position.
	outDays := make([]response_models.DaySchedule, 0, norm.DayCount)
	for i, date := range norm.Dates {
		genDay, ok := dayByDate[date]
		if !ok && i < len(days) {
			genDay = days[i]
		}

		schedule := make([]response_models.ScheduleItem, 0, len(genDay.Schedule))
		for _, item := range genDay.Schedule {
			schedule = append(schedule, s.reconcileItem(norm, item, placeByID, placeByName, attractionByID, attractionByName))
		}

		outDays = append(outDays, response_models.DaySchedule{
			Date:     date,
			Schedule: schedule,
		})
	}

	return &response_models.Itinerary{
		Days:    outDays,
		Suggest: buildGuestHouseSuggestions(norm, cand.Places, suggest),
	}
}

func (s *ItineraryService) reconcileItem(
	norm *normalizedRequest,
	item generatedItem,
	placeByID map[string]*db_models.Place,
	placeByName map[string]*db_models.Place,
	attractionByID map[string]*db_models.Attraction,
	attractionByName map[string]*db_models.Attraction,
) response_models.ScheduleItem {
	if item.Type == "attraction" {
		full := attractionByID[item.ID]
		if full == nil {
			full = attractionByName[strings.ToLower(item.Name)]
		}
		if full == nil {
			return passthroughItem(item)
		}
		return response_models.ScheduleItem{
			Time:        item.Time,
			Type:        item.Type,
			ID:          full.ID.String(),
			Name:        full.Name,
			Description: full.Description,
			Image:       full.Image,
			Latitude:    full.Latitude,
			Longitude:   full.Longitude,
		}
	}

	full := placeByID[item.ID]
	if full == nil {
		full = placeByName[strings.ToLower(item.Name)]
	}
	if full == nil {
		return passthroughItem(item)
	}

	out := response_models.ScheduleItem{
		Time:        item.Time,
		Type:        item.Type,
		ID:          full.ID.String(),
		Name:        full.Name,
		Description: full.Description,
		Image:       full.FirstImage(),
		Latitude:    full.Latitude,
		Longitude:   full.Longitude,
	}

	if item.Type == "restaurant" {
		price := full.PricePerTable
		out.Price = &price
		tables := item.Tables
		if tables <= 0 {
			tables = TablesNeeded(norm.TotalTravelers)
		}
		out.Tables = &tables
	}

	return out
}

func passthroughItem(item generatedItem) response_models.ScheduleItem {
	out := response_models.ScheduleItem{
		Time: item.Time,
		Type: item.Type,
		ID:   item.ID,
		Name: item.Name,
	}
	if item.Tables > 0 {
		tables := item.Tables
		out.Tables = &tables
	}
	return out
}

// buildGuestHouseSuggestions picks up to 3 guest houses ranked by ascending
// nightly price. The model's per-place room hint wins when it gave one for
// that exact id; otherwise the room count is recomputed from traveler counts.
// The computed block replaces whatever suggest array the model returned.
func buildGuestHouseSuggestions(norm *normalizedRequest, places []db_models.Place, suggest *generatedSuggest) response_models.ItinerarySuggest {
	const missingPrice = 99999

	modelRooms := make(map[string]int)
	if suggest != nil {
		for _, g := range suggest.GuestHouses {
			if g.Rooms > 0 {
				modelRooms[g.ID] = g.Rooms
			}
		}
	}

	guestHouses := make([]db_models.Place, 0, len(places))
	for _, p := range places {
		if p.Type == db_models.PlaceTypeGuestHouse {
			guestHouses = append(guestHouses, p)
		}
	}

	sortPrice := func(p db_models.Place) float64 {
		if p.PricePerNight == 0 {
			return missingPrice
		}
		return p.PricePerNight
	}
	for i := 1; i < len(guestHouses); i++ {
		for j := i; j > 0 && sortPrice(guestHouses[j]) < sortPrice(guestHouses[j-1]); j-- {
			guestHouses[j], guestHouses[j-1] = guestHouses[j-1], guestHouses[j]
		}
	}

	if len(guestHouses) > 3 {
		guestHouses = guestHouses[:3]
	}

	fallbackRooms := RoomsNeeded(norm.Adults, norm.Children)

	out := make([]response_models.GuestHouseSuggestion, 0, len(guestHouses))
	for _, g := range guestHouses {
		rooms, ok := modelRooms[g.ID.String()]
		if !ok {
			rooms = fallbackRooms
		}
		out = append(out, response_models.GuestHouseSuggestion{
			ID:        g.ID.String(),
			Name:      g.Name,
			Price:     g.PricePerNight,
			Image:     g.FirstImage(),
			Latitude:  g.Latitude,
			Longitude: g.Longitude,
			Rooms:     rooms,
		})
	}

	return response_models.ItinerarySuggest{GuestHouses: out}
}
