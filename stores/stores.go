// Package stores holds the data-access layer: one small interface per
// entity, each backed by the shared gorm handle. Handlers receive these
// interfaces at construction time and never touch the database directly.
package stores

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"restaurant-directory-api/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// UserStore owns user persistence and the password credential. Raw
// passwords never leave this interface: Register derives the stored hash
// and Authenticate verifies against it.
type UserStore interface {
	Register(ctx context.Context, user *models.User, password string) error
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

type CityStore interface {
	Create(ctx context.Context, city *models.City) error
}

// RestaurantStore exposes the writes plus the three query shapes the API
// serves. Nearest and CountByCity resolve the referenced city name inline.
type RestaurantStore interface {
	Create(ctx context.Context, r *models.Restaurant) error
	// Replace overwrites name, email, image, city and location of the
	// restaurant with the given id. It reports whether a row matched.
	Replace(ctx context.Context, id uint, r *models.Restaurant) (bool, error)
	// Deactivate flips is_active to 0. Matching no row is not an error.
	Deactivate(ctx context.Context, id uint) error
	// Nearest returns at most limit active restaurants that have a stored
	// location, ordered by ascending spherical distance from the given
	// point, distances in kilometres rounded to 4 decimal places.
	Nearest(ctx context.Context, lon, lat float64, limit int) ([]models.NearbyRestaurant, error)
	// SearchByPrefix returns the names of active restaurants whose name
	// starts with prefix. The match is case-sensitive.
	SearchByPrefix(ctx context.Context, prefix string) ([]models.RestaurantName, error)
	// CountByCity counts active restaurants grouped by their city.
	CountByCity(ctx context.Context) ([]models.CityCount, error)
}

type SessionStore interface {
	Create(ctx context.Context, s *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}
