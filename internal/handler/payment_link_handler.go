package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmoretti/payment-link-gateway/internal/dto"
	"github.com/nmoretti/payment-link-gateway/internal/middleware"
	"github.com/nmoretti/payment-link-gateway/internal/service"
)

type PaymentLinkHandler struct {
	svc *service.LinkService
}

func NewPaymentLinkHandler(svc *service.LinkService) *PaymentLinkHandler {
	return &PaymentLinkHandler{svc: svc}
}

func (h *PaymentLinkHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	params, fieldErrs := req.Validate()
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: "validation failed",
			Errors:  fieldErrs,
		})
		return
	}

	result, err := h.svc.CreateLink(c.Request.Context(), params)
	if err != nil {
		status, resp := middleware.MapProviderError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, dto.PaymentLinkResponse{
		PaymentLinkID: result.PaymentLinkID,
		URL:           result.URL,
	})
}
