package handlers

import (
	"errors"
	"net/http"
	"time"

	request "pcbquote/internal/adapter/http/dto/request"
	response "pcbquote/internal/adapter/http/dto/response"
	"pcbquote/internal/usecase"
	"pcbquote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quotation payload", http.StatusBadRequest)
	errInvalidOrderedAt    = pkg.NewDomainErrorSimple("INVALID_ORDER_TIMESTAMP", "Invalid order timestamp", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for board quotations.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote prices a full order specification and returns the price
// breakdown, lead time and projected finish date.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	orderedAt, err := payload.ResolveOrderedAt(time.Now().UTC())
	if err != nil {
		c.JSON(errInvalidOrderedAt.HTTPStatus, errInvalidOrderedAt.ToHTTPError())
		return
	}

	quote, err := h.usecase.GenerateQuote(c.Request.Context(), usecase.QuoteCommand{
		Spec:        payload.ToSpecification(),
		OrderedAt:   orderedAt,
		Currency:    payload.Currency,
		Destination: payload.Destination,
		Courier:     payload.Courier,
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// PreviewLeadTime computes the production cycle and finish date without
// pricing the order.
func (h *QuoteHandler) PreviewLeadTime(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	orderedAt, err := payload.ResolveOrderedAt(time.Now().UTC())
	if err != nil {
		c.JSON(errInvalidOrderedAt.HTTPStatus, errInvalidOrderedAt.ToHTTPError())
		return
	}

	lead, finish, err := h.usecase.PreviewLeadTime(c.Request.Context(), payload.ToSpecification(), orderedAt)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeadTime(lead, finish))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLayerCount),
		errors.Is(err, usecase.ErrInvalidThickness),
		errors.Is(err, usecase.ErrInvalidOrderTime):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
