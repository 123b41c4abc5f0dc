package gin

import (
	"net/http"
	"strconv"

	"github.com/fwojciec/reservo"
	"github.com/gin-gonic/gin"
)

type importRequest struct {
	URL    string `json:"url"`
	Enrich bool   `json:"enrich"`
	Save   bool   `json:"save"`
}

// handleImport handles POST /api/import. It responds with the extraction
// result, or with the created restaurant when save is set.
func (s *Server) handleImport(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, reservo.Errorf(reservo.EINVALID, "invalid request body"))
		return
	}

	res, err := s.Importer.Import(c.Request.Context(), req.URL, req.Enrich)
	if res == nil {
		writeError(c, err)
		return
	}
	if err != nil {
		s.logger.Warn("enrichment failed", "url", req.URL, "err", err)
	}

	if !req.Save {
		c.JSON(http.StatusOK, res)
		return
	}

	r := reservo.NewRestaurantFromExtraction(req.URL, res)
	if err := s.RestaurantService.CreateRestaurant(c.Request.Context(), r); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// handleListRestaurants handles GET /api/restaurants.
func (s *Server) handleListRestaurants(c *gin.Context) {
	var filter reservo.RestaurantFilter
	if v, ok := c.GetQuery("name"); ok {
		filter.Name = &v
	}
	if v, ok := c.GetQuery("city"); ok {
		filter.City = &v
	}
	if v, ok := c.GetQuery("cuisine"); ok {
		filter.Cuisine = &v
	}

	var err error
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		writeError(c, err)
		return
	}
	if filter.Offset, err = queryInt(c, "offset"); err != nil {
		writeError(c, err)
		return
	}

	restaurants, err := s.RestaurantService.FindRestaurants(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	if restaurants == nil {
		restaurants = []*reservo.Restaurant{}
	}
	c.JSON(http.StatusOK, restaurants)
}

// handleCreateRestaurant handles POST /api/restaurants.
func (s *Server) handleCreateRestaurant(c *gin.Context) {
	var r reservo.Restaurant
	if err := c.ShouldBindJSON(&r); err != nil {
		writeError(c, reservo.Errorf(reservo.EINVALID, "invalid request body"))
		return
	}

	if err := s.RestaurantService.CreateRestaurant(c.Request.Context(), &r); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, &r)
}

// handleGetRestaurant handles GET /api/restaurants/:id.
func (s *Server) handleGetRestaurant(c *gin.Context) {
	r, err := s.RestaurantService.FindRestaurantByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// handleUpdateRestaurant handles PUT /api/restaurants/:id.
func (s *Server) handleUpdateRestaurant(c *gin.Context) {
	var upd reservo.RestaurantUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		writeError(c, reservo.Errorf(reservo.EINVALID, "invalid request body"))
		return
	}

	r, err := s.RestaurantService.UpdateRestaurant(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// handleDeleteRestaurant handles DELETE /api/restaurants/:id.
func (s *Server) handleDeleteRestaurant(c *gin.Context) {
	if err := s.RestaurantService.DeleteRestaurant(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func queryInt(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, reservo.Errorf(reservo.EINVALID, "invalid %s %q", key, v)
	}
	return n, nil
}
