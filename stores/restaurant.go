package stores

import (
	"context"
	"math"
	"sort"
	"unicode/utf8"

	"gorm.io/gorm"

	"restaurant-directory-api/apperror"
	"restaurant-directory-api/models"
)

type gormRestaurantStore struct {
	db *gorm.DB
}

func NewRestaurantStore(db *gorm.DB) RestaurantStore {
	return &gormRestaurantStore{db: db}
}

func (s *gormRestaurantStore) Create(ctx context.Context, r *models.Restaurant) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return apperror.Store(models.FailureResponse)
	}
	return nil
}

func (s *gormRestaurantStore) Replace(ctx context.Context, id uint, r *models.Restaurant) (bool, error) {
	// Full replace of the editable fields. Nil coordinates overwrite any
	// stored location, so omitting it on edit clears it.
	res := s.db.WithContext(ctx).Model(&models.Restaurant{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":      r.Name,
			"email":     r.Email,
			"image":     r.Image,
			"city_id":   r.CityID,
			"longitude": r.Longitude,
			"latitude":  r.Latitude,
		})
	if res.Error != nil {
		return false, apperror.Store(models.FailureResponse)
	}
	return res.RowsAffected > 0, nil
}

func (s *gormRestaurantStore) Deactivate(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Model(&models.Restaurant{}).Where("id = ?", id).
		Update("is_active", 0).Error
	if err != nil {
		return apperror.Store(models.FailureResponse)
	}
	return nil
}

// nearbyRow is the scan target for the nearest query before distances are
// computed.
type nearbyRow struct {
	Name      string
	Email     string
	Longitude float64
	Latitude  float64
	CityName  *string
}

func (s *gormRestaurantStore) Nearest(ctx context.Context, lon, lat float64, limit int) ([]models.NearbyRestaurant, error) {
	var rows []nearbyRow
	err := s.db.WithContext(ctx).Table("restaurant").
		Select("restaurant.name, restaurant.email, restaurant.longitude, restaurant.latitude, city.name AS city_name").
		Joins("LEFT JOIN city ON city.id = restaurant.city_id").
		Where("restaurant.is_active = ? AND restaurant.longitude IS NOT NULL AND restaurant.latitude IS NOT NULL", 1).
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.Store(models.FailureResponse)
	}

	results := make([]models.NearbyRestaurant, 0, len(rows))
	for _, row := range rows {
		km := haversineKm(lon, lat, row.Longitude, row.Latitude)
		nearby := models.NearbyRestaurant{
			Name:     row.Name,
			Email:    row.Email,
			Distance: math.Round(km*1e4) / 1e4,
		}
		if row.CityName != nil {
			nearby.City = &models.CityName{Name: *row.CityName}
		}
		results = append(results, nearby)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *gormRestaurantStore) SearchByPrefix(ctx context.Context, prefix string) ([]models.RestaurantName, error) {
	// substr keeps the match case-sensitive; SQLite LIKE folds ASCII case.
	var names []models.RestaurantName
	err := s.db.WithContext(ctx).Table("restaurant").
		Select("name").
		Where("is_active = ? AND substr(name, 1, ?) = ?", 1, utf8.RuneCountInString(prefix), prefix).
		Scan(&names).Error
	if err != nil {
		return nil, apperror.Store(models.FailureResponse)
	}
	return names, nil
}

func (s *gormRestaurantStore) CountByCity(ctx context.Context) ([]models.CityCount, error) {
	var counts []models.CityCount
	err := s.db.WithContext(ctx).Table("restaurant").
		Select("city.name AS city_name, COUNT(*) AS count").
		Joins("LEFT JOIN city ON city.id = restaurant.city_id").
		Where("restaurant.is_active = ?", 1).
		Group("restaurant.city_id").
		Scan(&counts).Error
	if err != nil {
		return nil, apperror.Store(models.FailureResponse)
	}
	return counts, nil
}
