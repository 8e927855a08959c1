package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staylux-backend/models"
	"staylux-backend/services"
	"staylux-backend/store"
	"staylux-backend/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// List serves the public rooms page.
// GET /api/rooms?search=&type=&minPrice=&maxPrice=&capacity=
func (rc *RoomController) List(c *gin.Context) {
	criteria := services.RoomCriteria{
		Query: c.Query("search"),
		Type:  c.Query("type"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MaxPrice = &v
		}
	}
	if raw := c.Query("capacity"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			criteria.MinCapacity = &v
		}
	}
	utils.JSONSuccess(c, http.StatusOK, rc.RoomSvc.List(criteria))
}

// GET /api/rooms/:id
func (rc *RoomController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	room, err := rc.RoomSvc.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// AdminList serves the admin rooms table with its free-text search.
// GET /api/admin/rooms?q=
func (rc *RoomController) AdminList(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.RoomSvc.Search(c.Query("q")))
}

type createRoomRequest struct {
	Name      string   `json:"name" binding:"required"`
	Type      string   `json:"type" binding:"required"`
	Capacity  int      `json:"capacity" binding:"required,gt=0"`
	Price     float64  `json:"price" binding:"gte=0"`
	Status    string   `json:"status"`
	Images    []string `json:"images"`
	Amenities []string `json:"amenities"`
}

// POST /api/admin/rooms
func (rc *RoomController) Create(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room := rc.RoomSvc.Create(models.Room{
		Name:      req.Name,
		Type:      req.Type,
		Capacity:  req.Capacity,
		Price:     req.Price,
		Status:    req.Status,
		Images:    req.Images,
		Amenities: req.Amenities,
	})
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// Update applies a partial patch; admin status changes come through here.
// PATCH /api/admin/rooms/:id
func (rc *RoomController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	var patch models.RoomPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room, err := rc.RoomSvc.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DELETE /api/admin/rooms/:id
func (rc *RoomController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	if err := rc.RoomSvc.Delete(id); err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
