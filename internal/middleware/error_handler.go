package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v82"

	"github.com/nmoretti/payment-link-gateway/internal/dto"
)

// MapProviderError turns a failed provider call into an HTTP status and body.
// Stripe's own message text is surfaced so callers see what the provider said.
func MapProviderError(err error) (int, dto.ErrorResponse) {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		log.Error().
			Str("code", string(stripeErr.Code)).
			Str("type", string(stripeErr.Type)).
			Msg("stripe call failed")
		msg := stripeErr.Msg
		if msg == "" {
			msg = "payment provider request failed"
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Error: msg}
	}

	log.Error().Err(err).Msg("provider call failed")
	return http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			status, resp := MapProviderError(c.Errors.Last().Err)
			c.JSON(status, resp)
		}
	}
}
