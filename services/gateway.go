package services

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/models"
)

// ErrUnsupportedMethod is returned when a checkout request names a payment
// method no gateway is registered for.
var ErrUnsupportedMethod = errors.New("unsupported payment method")

// ConfigError means a gateway's credentials are missing. It is raised before
// any network call and maps to a client-correctable 400.
type ConfigError struct {
	Gateway string
	Detail  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s is not configured: %s", e.Gateway, e.Detail)
}

// UpstreamError means the provider's API failed. The provider's response
// body is carried for diagnostics, never swallowed.
type UpstreamError struct {
	Gateway string
	Detail  string
	Status  int
	Body    string
	Err     error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Gateway, e.Detail)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// SignatureError means a webhook or payment signature failed verification.
type SignatureError struct {
	Gateway string
	Err     error
}

func (e *SignatureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid signature: %v", e.Gateway, e.Err)
	}
	return fmt.Sprintf("%s: invalid signature", e.Gateway)
}

func (e *SignatureError) Unwrap() error { return e.Err }

// Gateway is the single capability each payment provider adapter exposes:
// turn a checkout request into a provider-side session.
type Gateway interface {
	Method() string
	CreateSession(ctx context.Context, req *models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, error)
}

// OrderTotal computes the order total from line items. Callers must never
// trust a client-supplied total.
func OrderTotal(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
