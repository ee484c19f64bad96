package plan_models

// TravelPlanLLMInput is the normalized projection of a trip request handed to
// the LLM client. Immutable once constructed.
type TravelPlanLLMInput struct {
	Departure   string
	Destination string
	Companions  string
	StartDate   string // yyyy-MM-dd
	EndDate     string // yyyy-MM-dd
	Concepts    []string
	Preferences string
}

// TravelCoordinates is always present on an activity, even when both
// components are null; downstream consumers rely on the structural presence.
type TravelCoordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (c TravelCoordinates) Resolved() bool {
	return c.Latitude != nil && c.Longitude != nil
}

type TravelActivity struct {
	Order             int               `json:"order"`
	ActivityStartTime *string           `json:"activityStartTime"` // HH:mm
	ActivityEndTime   *string           `json:"activityEndTime"`   // HH:mm
	Location          string            `json:"location"`
	PlaceSearchQuery  string            `json:"placeSearchQuery,omitempty"`
	Categories        []string          `json:"categories"`
	PlaceID           string            `json:"placeId,omitempty"`
	Rating            *float64          `json:"rating,omitempty"`         // 0.0 ~ 5.0
	OperatingHours    []string          `json:"operatingHours,omitempty"` // ex) ["월 09:00-18:00", ...]
	TravelTime        *int              `json:"travelTime,omitempty"`     // minutes to next activity, nil for the last one
	Description       string            `json:"description,omitempty"`
	Coordinates       TravelCoordinates `json:"coordinates"`
}

type TravelDayPlan struct {
	Day        int              `json:"day"`
	Date       string           `json:"date"` // yyyy-MM-dd
	Activities []TravelActivity `json:"activities"`
}

type TravelPlanLLMResponse struct {
	RecommendedPlaces []string
	Schedule          []TravelDayPlan
	Summary           string
}

// GeoJSONPoint is derived at persistence time for activities whose
// coordinates resolved. GeoJSON order: [longitude, latitude].
type GeoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// PersistedActivity is the shape written into the schedule blob.
type PersistedActivity struct {
	Order             int               `json:"order"`
	ActivityStartTime *string           `json:"activityStartTime"`
	ActivityEndTime   *string           `json:"activityEndTime"`
	Location          string            `json:"location"`
	PlaceSearchQuery  string            `json:"placeSearchQuery,omitempty"`
	Categories        []string          `json:"categories"`
	PlaceID           string            `json:"placeId,omitempty"`
	Rating            *float64          `json:"rating,omitempty"`
	OperatingHours    []string          `json:"operatingHours,omitempty"`
	TravelTime        *int              `json:"travelTime,omitempty"`
	Description       string            `json:"description,omitempty"`
	Coordinates       TravelCoordinates `json:"coordinates"`
	LocationGeoJSON   *GeoJSONPoint     `json:"locationGeoJson,omitempty"`
}

type PersistedDayPlan struct {
	Day        int                 `json:"day"`
	Date       string              `json:"date"`
	Activities []PersistedActivity `json:"activities"`
}
