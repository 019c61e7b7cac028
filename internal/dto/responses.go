package dto

import "github.com/nmoretti/payment-link-gateway/internal/model"

type PaymentLinkResponse struct {
	PaymentLinkID string `json:"paymentLinkId"`
	URL           string `json:"url"`
}

type SuccessfulPaymentsResponse struct {
	SuccessfulPayments []model.PaymentRecord `json:"successfulPayments"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
