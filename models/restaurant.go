package models

import "time"

// Restaurant references its city by id only; the reference is not enforced,
// so an unknown city id is stored as-is and resolves to no name in queries.
type Restaurant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Image     string    `json:"image" gorm:"not null"` // link
	CityID    uint      `json:"city" gorm:"not null"`
	Longitude *float64  `json:"-"` // [longitude, latitude], both set or both null
	Latitude  *float64  `json:"-"`
	IsActive  int       `json:"is_active" gorm:"default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Restaurant) TableName() string { return "restaurant" }

// CityName is the inline city projection used by query results.
type CityName struct {
	Name string `json:"name"`
}

// NearbyRestaurant is one row of a nearest-restaurants query, distance in
// kilometres.
type NearbyRestaurant struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	City     *CityName `json:"city"`
	Distance float64   `json:"distance (km)"`
}

// RestaurantName is the name-only projection returned by prefix search.
type RestaurantName struct {
	Name string `json:"name"`
}

// CityCount is one group of the count-by-city aggregation. CityName is nil
// when restaurants reference a city that does not exist.
type CityCount struct {
	CityName *string `json:"city_name"`
	Count    int     `json:"count"`
}
