package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kisxo/ita-api/internal/dbctx"
	"github.com/kisxo/ita-api/internal/errors"
	"github.com/kisxo/ita-api/internal/models"
	"github.com/kisxo/ita-api/internal/services"
)

// ContestantHandler serves the /ita endpoints
type ContestantHandler struct {
	contestantService services.ContestantService
}

// NewContestantHandler creates a new contestant handler with service injection
func NewContestantHandler(contestantService services.ContestantService) *ContestantHandler {
	return &ContestantHandler{
		contestantService: contestantService,
	}
}

// GetContestant returns the contestant with the given phone, or null
func (h *ContestantHandler) GetContestant(c *gin.Context) {
	phone, err := phoneQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	contestant, err := h.contestantService.GetByPhone(requestDB(c), phone)
	if err != nil {
		respondError(c, err)
		return
	}
	if contestant == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, contestant)
}

// CreateContestant registers a new contestant
func (h *ContestantHandler) CreateContestant(c *gin.Context) {
	var req models.CreateContestantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.ValidationError("Invalid request body: "+err.Error(), err))
		return
	}

	contestant, err := h.contestantService.Create(requestDB(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contestant.Public())
}

// UpdateContestant applies a partial update to the contestant with the given phone
func (h *ContestantHandler) UpdateContestant(c *gin.Context) {
	phone, err := phoneQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var upd models.ContestantUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondError(c, errors.ValidationError("Invalid request body: "+err.Error(), err))
		return
	}

	contestant, err := h.contestantService.Update(requestDB(c), phone, upd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contestant.Public())
}

func phoneQuery(c *gin.Context) (int64, error) {
	raw, ok := c.GetQuery("phone")
	if !ok || raw == "" {
		return 0, errors.ValidationError("Query parameter phone is required", nil)
	}
	phone, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.InvalidInput("Query parameter phone must be an integer", err)
	}
	return phone, nil
}

// requestDB scopes storage access to the lifetime of the request
func requestDB(c *gin.Context) dbctx.Context {
	return dbctx.New(c.Request.Context())
}
