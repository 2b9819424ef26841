package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"portfolio-backend/models"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"github.com/stripe/stripe-go/v80/webhook"
)

// StripeGateway creates hosted checkout sessions and verifies webhook
// deliveries. The API client is owned by the instance; no package-global
// key is set.
type StripeGateway struct {
	webhookSecret string
	frontendURL   string
	api           *client.API
}

func NewStripeGateway(secretKey, webhookSecret, frontendURL string, timeout time.Duration) *StripeGateway {
	g := &StripeGateway{
		webhookSecret: webhookSecret,
		frontendURL:   frontendURL,
	}
	if secretKey != "" {
		api := &client.API{}
		api.Init(secretKey, stripe.NewBackends(&http.Client{Timeout: timeout}))
		g.api = api
	}
	return g
}

func (g *StripeGateway) Method() string { return models.PaymentMethodStripe }

func (g *StripeGateway) CreateSession(ctx context.Context, req *models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, error) {
	if g.api == nil {
		return nil, &ConfigError{Gateway: "Stripe", Detail: "set STRIPE_SECRET_KEY"}
	}

	total := OrderTotal(req.Items)
	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          stripeLineItems(req.Items),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(g.frontendURL + "/dashboard?payment=success&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(g.frontendURL + "/#products"),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	// Snapshot of what was sold, kept on the session for later audit.
	params.AddMetadata("items", string(itemsJSON))
	params.AddMetadata("total", strconv.FormatFloat(total, 'f', -1, 64))
	params.AddMetadata("payment_method", models.PaymentMethodStripe)

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, stripeUpstreamError(err)
	}

	return &models.CheckoutSessionResponse{
		SessionID:     sess.ID,
		URL:           sess.URL,
		PaymentMethod: models.PaymentMethodStripe,
	}, nil
}

// VerifyWebhook checks the signature of a raw webhook payload. The check is
// unconditional: without a configured secret every delivery is rejected.
func (g *StripeGateway) VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error) {
	if g.webhookSecret == "" {
		return stripe.Event{}, &ConfigError{Gateway: "Stripe", Detail: "set STRIPE_WEBHOOK_SECRET"}
	}
	event, err := webhook.ConstructEvent(payload, sigHeader, g.webhookSecret)
	if err != nil {
		return stripe.Event{}, &SignatureError{Gateway: "Stripe", Err: err}
	}
	return event, nil
}

// stripeLineItems converts order items to Stripe line items with unit
// amounts in cents.
func stripeLineItems(items []models.OrderItem) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}
	return lineItems
}

func stripeUpstreamError(err error) error {
	upstream := &UpstreamError{Gateway: "Stripe", Detail: "checkout session creation failed", Err: err}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		upstream.Status = stripeErr.HTTPStatusCode
		upstream.Body = stripeErr.Msg
	}
	return upstream
}
