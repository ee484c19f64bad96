package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"tripnote/pkg/logger"
)

type PlaceDetail struct {
	Latitude         float64
	Longitude        float64
	Rating           *float64
	UserRatingsTotal *int
	OpeningHoursText []string
	OpeningNow       *bool
	PlaceID          string
	FormattedAddress string
}

// PlacesClientInterface resolves geodata for a free-text place query.
// GetPlaceDetails never returns an error: not-found and upstream faults both
// come back as nil so one broken lookup can never fail a whole request.
type PlacesClientInterface interface {
	GetPlaceDetails(ctx context.Context, query string) *PlaceDetail
}

// --------- In-memory cache per query ---------

type placeCacheEntry struct {
	Detail    *PlaceDetail
	ExpiresAt time.Time
}

type PlaceDetailCache interface {
	Get(query string) (*PlaceDetail, bool)
	Set(query string, detail *PlaceDetail, ttl time.Duration)
}

type inMemoryPlaceCache struct {
	mu    sync.RWMutex
	store map[string]placeCacheEntry
}

func NewInMemoryPlaceCache() PlaceDetailCache {
	return &inMemoryPlaceCache{store: make(map[string]placeCacheEntry)}
}

func (c *inMemoryPlaceCache) Get(query string) (*PlaceDetail, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[query]
	if !ok || time.Now().After(it.ExpiresAt) {
		return nil, false
	}
	return it.Detail, true
}

func (c *inMemoryPlaceCache) Set(query string, detail *PlaceDetail, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[query] = placeCacheEntry{Detail: detail, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Google Places client ---------------

type GooglePlacesClient struct {
	HTTP       *http.Client
	APIKey     string
	BaseURL    string
	Cache      PlaceDetailCache
	DefaultTTL time.Duration
	Log        logger.Logger
}

func NewGooglePlacesClient(cache PlaceDetailCache, log logger.Logger) *GooglePlacesClient {
	apiKey := os.Getenv("GOOGLE_MAPS_PLATFORM_KEY")
	if apiKey == "" {
		panic("GOOGLE_MAPS_PLATFORM_KEY is empty")
	}
	return &GooglePlacesClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		APIKey:     apiKey,
		BaseURL:    "https://maps.googleapis.com/maps/api/place",
		Cache:      cache,
		DefaultTTL: 24 * time.Hour,
		Log:        log,
	}
}

// GetPlaceDetails resolves a query in two stages: FindPlaceFromText first,
// TextSearch as fallback. A candidate with a place_id is refined through the
// Details endpoint, keeping the candidate's own fields for anything Details
// omits. Every upstream failure degrades to "no result" for that stage.
func (c *GooglePlacesClient) GetPlaceDetails(ctx context.Context, query string) *PlaceDetail {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	if c.Cache != nil {
		if detail, ok := c.Cache.Get(query); ok {
			return detail
		}
	}

	detail := c.findPlaceFromText(ctx, query)
	if detail == nil {
		detail = c.textSearch(ctx, query)
	}

	if detail == nil {
		c.Log.Warnf("[PLACES] No result for query (all stages failed): %s", query)
		return nil
	}

	if c.Cache != nil {
		c.Cache.Set(query, detail, c.DefaultTTL)
	}
	return detail
}

type googleOpeningHours struct {
	OpenNow     *bool    `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

type googlePlaceResult struct {
	PlaceID             string              `json:"place_id"`
	Name                string              `json:"name"`
	Rating              *float64            `json:"rating"`
	UserRatingsTotal    *int                `json:"user_ratings_total"`
	FormattedAddress    string              `json:"formatted_address"`
	OpeningHours        *googleOpeningHours `json:"opening_hours"`
	CurrentOpeningHours *googleOpeningHours `json:"current_opening_hours"`
	Geometry            *struct {
		Location *struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

func (c *GooglePlacesClient) findPlaceFromText(ctx context.Context, query string) *PlaceDetail {
	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("language", "ko")
	params.Set("region", "kr")
	params.Set("fields", "place_id,name,geometry/location,rating,user_ratings_total,opening_hours/weekday_text,formatted_address")
	params.Set("key", c.APIKey)

	var payload struct {
		Status       string              `json:"status"`
		ErrorMessage string              `json:"error_message"`
		Candidates   []googlePlaceResult `json:"candidates"`
	}
	if err := c.getJSON(ctx, "/findplacefromtext/json", params, &payload); err != nil {
		c.Log.Warnf("[PLACES] FindPlace call failed: %v (query=%s)", err, query)
		return nil
	}

	if payload.Status != "OK" || len(payload.Candidates) == 0 {
		c.Log.Warnf("[PLACES] FindPlace no candidates: %s, status=%s %s", query, payload.Status, payload.ErrorMessage)
		return nil
	}

	candidate := payload.Candidates[0]
	direct := mapResultToDetail(candidate)
	if candidate.PlaceID != "" {
		return c.fetchDetailsByID(ctx, candidate.PlaceID, query, direct)
	}
	return direct
}

func (c *GooglePlacesClient) textSearch(ctx context.Context, query string) *PlaceDetail {
	params := url.Values{}
	params.Set("query", query)
	params.Set("language", "ko")
	params.Set("region", "kr")
	params.Set("key", c.APIKey)

	var payload struct {
		Status       string              `json:"status"`
		ErrorMessage string              `json:"error_message"`
		Results      []googlePlaceResult `json:"results"`
	}
	if err := c.getJSON(ctx, "/textsearch/json", params, &payload); err != nil {
		c.Log.Warnf("[PLACES] TextSearch call failed: %v (query=%s)", err, query)
		return nil
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		c.Log.Warnf("[PLACES] TextSearch no results: %s, status=%s %s", query, payload.Status, payload.ErrorMessage)
		return nil
	}

	candidate := payload.Results[0]
	direct := mapResultToDetail(candidate)
	if candidate.PlaceID != "" {
		return c.fetchDetailsByID(ctx, candidate.PlaceID, query, direct)
	}
	return direct
}

// fetchDetailsByID enriches a candidate through the Details endpoint. The
// fallback detail fills any field Details omits; on any failure the fallback
// is returned as-is.
func (c *GooglePlacesClient) fetchDetailsByID(ctx context.Context, placeID, query string, fallback *PlaceDetail) *PlaceDetail {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("language", "ko")
	params.Set("region", "kr")
	params.Set("fields", "geometry/location,rating,user_ratings_total,opening_hours/weekday_text,opening_hours/open_now,formatted_address,place_id")
	params.Set("key", c.APIKey)

	var payload struct {
		Status       string             `json:"status"`
		ErrorMessage string             `json:"error_message"`
		Result       *googlePlaceResult `json:"result"`
	}
	if err := c.getJSON(ctx, "/details/json", params, &payload); err != nil {
		c.Log.Warnf("[PLACES] Details call failed: %v (placeId=%s, query=%s)", err, placeID, query)
		return fallback
	}

	if payload.Status != "OK" || payload.Result == nil || payload.Result.Geometry == nil || payload.Result.Geometry.Location == nil {
		c.Log.Warnf("[PLACES] Details no result: placeId=%s, query=%s, status=%s %s", placeID, query, payload.Status, payload.ErrorMessage)
		return fallback
	}

	detail := mapResultToDetail(*payload.Result)
	if detail == nil {
		return fallback
	}
	if detail.PlaceID == "" {
		detail.PlaceID = placeID
	}
	if fallback != nil {
		if detail.Rating == nil {
			detail.Rating = fallback.Rating
		}
		if detail.UserRatingsTotal == nil {
			detail.UserRatingsTotal = fallback.UserRatingsTotal
		}
		if len(detail.OpeningHoursText) == 0 {
			detail.OpeningHoursText = fallback.OpeningHoursText
		}
		if detail.OpeningNow == nil {
			detail.OpeningNow = fallback.OpeningNow
		}
		if detail.FormattedAddress == "" {
			detail.FormattedAddress = fallback.FormattedAddress
		}
	}

	return detail
}

func mapResultToDetail(result googlePlaceResult) *PlaceDetail {
	if result.Geometry == nil || result.Geometry.Location == nil {
		return nil
	}

	hours := result.OpeningHours
	if hours == nil || len(hours.WeekdayText) == 0 {
		if result.CurrentOpeningHours != nil {
			hours = result.CurrentOpeningHours
		}
	}

	detail := &PlaceDetail{
		Latitude:         result.Geometry.Location.Lat,
		Longitude:        result.Geometry.Location.Lng,
		Rating:           result.Rating,
		UserRatingsTotal: result.UserRatingsTotal,
		PlaceID:          result.PlaceID,
		FormattedAddress: result.FormattedAddress,
	}
	if hours != nil {
		detail.OpeningHoursText = hours.WeekdayText
		detail.OpeningNow = hours.OpenNow
	}
	return detail
}

func (c *GooglePlacesClient) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}
