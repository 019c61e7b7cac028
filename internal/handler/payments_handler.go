package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmoretti/payment-link-gateway/internal/dto"
	"github.com/nmoretti/payment-link-gateway/internal/middleware"
	"github.com/nmoretti/payment-link-gateway/internal/service"
)

type PaymentsHandler struct {
	svc *service.PaymentService
}

func NewPaymentsHandler(svc *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{svc: svc}
}

func (h *PaymentsHandler) List(c *gin.Context) {
	records, err := h.svc.ListSuccessful(c.Request.Context())
	if err != nil {
		status, resp := middleware.MapProviderError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessfulPaymentsResponse{
		SuccessfulPayments: records,
	})
}
