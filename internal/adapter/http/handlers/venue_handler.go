package handlers

import (
	"net/http"

	request "wedding_admin/internal/adapter/http/dto/request"
	response "wedding_admin/internal/adapter/http/dto/response"
	"wedding_admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	usecase usecase.IVenueUseCase
}

func NewVenueHandler(uc usecase.IVenueUseCase) *VenueHandler {
	return &VenueHandler{usecase: uc}
}

func (h *VenueHandler) Upsert(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var payload request.VenueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	v, err := h.usecase.Upsert(c.Request.Context(), owner, c.Param("id"), payload.Name, payload.BasePrice)
	if err != nil {
		writeError(c, mapVenueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVenue(v))
}

func (h *VenueHandler) Choose(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	v, err := h.usecase.Choose(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		writeError(c, mapVenueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVenue(v))
}

func (h *VenueHandler) GetChosen(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	v, err := h.usecase.GetChosen(c.Request.Context(), owner)
	if err != nil {
		writeError(c, mapVenueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVenue(v))
}
