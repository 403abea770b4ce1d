package handler

import (
	"fmt"
	"strconv"

	"cashcard-service/internal/adapter/http/dto"
	"cashcard-service/internal/adapter/http/middleware"
	"cashcard-service/internal/core/ports"
	"cashcard-service/pkg/apperror"
	"cashcard-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// CardHandler handles the /cashcards endpoints.
type CardHandler struct {
	cardSvc ports.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardSvc ports.CardService) *CardHandler {
	return &CardHandler{cardSvc: cardSvc}
}

// cardID parses the :id path parameter. A non-numeric id cannot name any
// record, so it reports not-found rather than bad-request.
func cardID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.ErrCardNotFound())
		return 0, false
	}
	return id, true
}

// FindByID handles GET /cashcards/:id.
func (h *CardHandler) FindByID(c *gin.Context) {
	id, ok := cardID(c)
	if !ok {
		return
	}

	card, err := h.cardSvc.FindByID(c.Request.Context(), id, middleware.Principal(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToCardResponse(card))
}

// Create handles POST /cashcards.
func (h *CardHandler) Create(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	card, err := h.cardSvc.Create(c.Request.Context(), req.Amount, middleware.Principal(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, fmt.Sprintf("/cashcards/%d", card.ID))
}

// List handles GET /cashcards.
func (h *CardHandler) List(c *gin.Context) {
	var query dto.ListCardsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	cards, err := h.cardSvc.ListByOwner(c.Request.Context(), middleware.Principal(c), query.ToPage())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToCardResponses(cards))
}

// Update handles PUT /cashcards/:id.
func (h *CardHandler) Update(c *gin.Context) {
	id, ok := cardID(c)
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.cardSvc.Update(c.Request.Context(), id, req.ID, req.Amount, middleware.Principal(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Delete handles DELETE /cashcards/:id.
func (h *CardHandler) Delete(c *gin.Context) {
	id, ok := cardID(c)
	if !ok {
		return
	}

	if err := h.cardSvc.Delete(c.Request.Context(), id, middleware.Principal(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
