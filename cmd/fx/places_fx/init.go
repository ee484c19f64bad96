package places_fx

import (
	"go.uber.org/fx"
	"tripnote/internal/services"
	"tripnote/pkg/logger"
)

var Module = fx.Provide(
	providePlaceCache, providePlacesClient)

func providePlaceCache() services.PlaceDetailCache {
	return services.NewInMemoryPlaceCache()
}

func providePlacesClient(cache services.PlaceDetailCache, log logger.Logger) services.PlacesClientInterface {
	return services.NewGooglePlacesClient(cache, log)
}
