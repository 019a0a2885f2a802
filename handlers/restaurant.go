package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-directory-api/apperror"
	"restaurant-directory-api/models"
	"restaurant-directory-api/stores"
)

// nearestLimit caps how many restaurants a nearest query returns.
const nearestLimit = 5

type RestaurantHandler struct {
	restaurants stores.RestaurantStore
}

func NewRestaurantHandler(restaurants stores.RestaurantStore) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants}
}

// RestaurantRequest is the body shared by add and edit. The city id is
// stored without an existence check. Location, when given, is exactly
// [longitude, latitude].
type RestaurantRequest struct {
	Name     string    `json:"name" form:"name" binding:"required"`
	City     uint      `json:"city" form:"city" binding:"required"`
	Email    string    `json:"email" form:"email" binding:"required,email"`
	Image    string    `json:"image" form:"image" binding:"required,uri"`
	Location []float64 `json:"location" form:"location" binding:"omitempty,len=2"`
}

func (req *RestaurantRequest) model() models.Restaurant {
	r := models.Restaurant{
		Name:   req.Name,
		Email:  req.Email,
		Image:  req.Image,
		CityID: req.City,
	}
	if len(req.Location) == 2 {
		r.Longitude = &req.Location[0]
		r.Latitude = &req.Location[1]
	}
	return r
}

// Add creates an active restaurant.
func (h *RestaurantHandler) Add(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperror.Validation(bindingMessage(err)))
		return
	}

	restaurant := req.model()
	restaurant.IsActive = 1
	if err := h.restaurants.Create(c.Request.Context(), &restaurant); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Restaurant added successfully")
}

// Edit fully replaces the stored fields of the restaurant named by the id
// query parameter.
func (h *RestaurantHandler) Edit(c *gin.Context) {
	id, err := queryID(c)
	if err != nil {
		fail(c, err)
		return
	}
	var req RestaurantRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, apperror.Validation(bindingMessage(err)))
		return
	}

	restaurant := req.model()
	matched, err := h.restaurants.Replace(c.Request.Context(), id, &restaurant)
	if err != nil {
		fail(c, err)
		return
	}
	if !matched {
		fail(c, apperror.NotFound("No restaurant found for the given ID"))
		return
	}
	ok(c, "Restaurant updated successfully")
}

// Delete deactivates a restaurant. Deleting an unknown or already inactive
// id succeeds all the same.
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, err := queryID(c)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.restaurants.Deactivate(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Restaurant deleted successfully")
}

type NearestQuery struct {
	Location []float64 `form:"location" binding:"required,len=2"`
}

// Nearest ranks active restaurants by distance from the given point.
func (h *RestaurantHandler) Nearest(c *gin.Context) {
	var query NearestQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, apperror.Validation(bindingMessage(err)))
		return
	}

	results, err := h.restaurants.Nearest(c.Request.Context(), query.Location[0], query.Location[1], nearestLimit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, results)
}

// Search lists active restaurants whose name starts with the given text.
func (h *RestaurantHandler) Search(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		fail(c, apperror.Validation(`"text" is required`))
		return
	}

	names, err := h.restaurants.SearchByPrefix(c.Request.Context(), text)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, names)
}

// Statistics counts active restaurants per city.
func (h *RestaurantHandler) Statistics(c *gin.Context) {
	counts, err := h.restaurants.CountByCity(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, counts)
}

func queryID(c *gin.Context) (uint, error) {
	raw := c.Query("id")
	if raw == "" {
		return 0, apperror.Validation(`"id" is required`)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperror.Validation(`"id" must be a valid restaurant id`)
	}
	return uint(id), nil
}
