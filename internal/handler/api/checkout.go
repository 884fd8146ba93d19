package api

import (
	"errors"
	"net/http"

	reqdto "pos-register/internal/handler/dto/request"
	resdto "pos-register/internal/handler/dto/response"
	"pos-register/internal/handler/httperr"
	"pos-register/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// @Summary Start sale session
// @Description Create a new pending sale session at the authority
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.SessionResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	session, err := h.checkoutUseCase.Start(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionAlreadyActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A sale session is already active",
			})
		case errors.Is(err, usecase.ErrFinalizeInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A terminal transition is in progress",
			})
		case errors.Is(err, usecase.ErrAuthorityUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Sales authority is unavailable",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSession(session))
}

// @Summary Checkout state
// @Description Current session snapshot plus queued recoverable notices
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CheckoutStateResponse
// @Failure 401 {object} map[string]string
// @Router /checkout [get]
func (h *CheckoutHandler) State(c *gin.Context) {
	state := resdto.CheckoutStateResponse{
		Session: resdto.FromSession(h.checkoutUseCase.Current()),
		Notices: resdto.FromNotices(h.checkoutUseCase.DrainNotices()),
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Add item
// @Description Queue an add-item intent; the response carries the last known-good snapshot
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddItemRequest true "Add item intent"
// @Success 202 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/items [post]
func (h *CheckoutHandler) AddItem(c *gin.Context) {
	var req reqdto.AddItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.checkoutUseCase.AddItem(c.Request.Context(), req.CatalogEntryID, req.Quantity); err != nil {
		h.mutationError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromSession(h.checkoutUseCase.Current()))
}

// @Summary Set line item quantity
// @Description Queue a quantity change; values below one remove the item
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Line item ID"
// @Param request body reqdto.UpdateItemRequest true "Quantity intent"
// @Success 202 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/items/{id} [patch]
func (h *CheckoutHandler) SetQuantity(c *gin.Context) {
	lineItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid line item ID format",
		})
		return
	}

	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.checkoutUseCase.SetQuantity(c.Request.Context(), lineItemID, *req.Quantity); err != nil {
		h.mutationError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromSession(h.checkoutUseCase.Current()))
}

// @Summary Remove line item
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Param id path string true "Line item ID"
// @Success 202 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/items/{id} [delete]
func (h *CheckoutHandler) RemoveItem(c *gin.Context) {
	lineItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid line item ID format",
		})
		return
	}

	if err := h.checkoutUseCase.RemoveItem(c.Request.Context(), lineItemID); err != nil {
		h.mutationError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromSession(h.checkoutUseCase.Current()))
}

// @Summary Finalize sale
// @Description Complete the pending sale; optionally hand off a customer receipt link
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.FinalizeRequest false "Finalize request"
// @Success 200 {object} resdto.FinalizeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /checkout/finalize [post]
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	var req reqdto.FinalizeRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	contact, err := req.ToContact()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid customer contact",
		})
		return
	}

	result, err := h.checkoutUseCase.Finalize(c.Request.Context(), contact)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoActiveSession):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No active sale session",
			})
		case errors.Is(err, usecase.ErrSessionNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Sale session is not pending",
			})
		case errors.Is(err, usecase.ErrEmptySession):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cannot finalize an empty sale",
			})
		case errors.Is(err, usecase.ErrFinalizeInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Finalize already in progress",
			})
		case errors.Is(err, usecase.ErrSyncPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Item changes are still syncing, try again",
			})
		case errors.Is(err, usecase.ErrAuthorityUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Sales authority is unavailable",
			})
		case errors.Is(err, usecase.ErrFinalizeRejected):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Sales authority rejected the finalize",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FinalizeResponse{
		Session:     resdto.FromSession(result.Session),
		ReceiptLink: result.ReceiptLink,
	})
}

// @Summary Cancel sale
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /checkout/cancel [post]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	if err := h.checkoutUseCase.Cancel(c.Request.Context()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoActiveSession):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No active sale session",
			})
		case errors.Is(err, usecase.ErrSessionNotActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Sale session is not pending",
			})
		case errors.Is(err, usecase.ErrFinalizeInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A terminal transition is in progress",
			})
		case errors.Is(err, usecase.ErrSyncPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Item changes are still syncing, try again",
			})
		case errors.Is(err, usecase.ErrAuthorityUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Sales authority is unavailable",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Discard session
// @Description Drop the in-memory session; a pending one is abandoned at the authority
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout [delete]
func (h *CheckoutHandler) Discard(c *gin.Context) {
	if err := h.checkoutUseCase.Discard(); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoActiveSession):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active sale session",
			})
		case errors.Is(err, usecase.ErrFinalizeInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A terminal transition is in progress",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) mutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be at least 1",
		})
	case errors.Is(err, usecase.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Item is out of stock",
		})
	case errors.Is(err, usecase.ErrNoActiveSession):
		c.JSON(http.StatusConflict, gin.H{
			"error": "No active sale session",
		})
	case errors.Is(err, usecase.ErrSessionNotActive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Sale session is not pending",
		})
	case errors.Is(err, usecase.ErrLineItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Line item not found",
		})
	case errors.Is(err, usecase.ErrFinalizeInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A terminal transition is in progress",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
