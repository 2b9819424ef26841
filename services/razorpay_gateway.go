package services

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"portfolio-backend/models"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// TODO: replace this fixed USD→INR approximation with a rate sourced from a
// live feed; until then INR totals drift from market rate.
const defaultUSDToINR = 83.0

// RazorpayGateway creates provider orders for the embedded widget flow. No
// redirect URL exists: the response carries amount, currency and the
// client-facing key so the frontend can render the widget, and the client
// later submits the payment signature for verification.
type RazorpayGateway struct {
	keyID       string
	keySecret   string
	frontendURL string
	usdToINR    float64
	client      *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret, frontendURL string, usdToINR float64, timeout time.Duration) *RazorpayGateway {
	g := &RazorpayGateway{
		keyID:       keyID,
		keySecret:   keySecret,
		frontendURL: frontendURL,
		usdToINR:    usdToINR,
	}
	if g.usdToINR <= 0 {
		g.usdToINR = defaultUSDToINR
	}
	if keyID != "" && keySecret != "" {
		c := razorpay.NewClient(keyID, keySecret)
		c.SetTimeout(int16(timeout.Seconds()))
		g.client = c
	}
	return g
}

func (g *RazorpayGateway) Method() string { return models.PaymentMethodRazorpay }

// amountInPaise converts a USD total into INR minor units.
func (g *RazorpayGateway) amountInPaise(totalUSD float64) int64 {
	return int64(math.Round(totalUSD * g.usdToINR * 100))
}

func (g *RazorpayGateway) CreateSession(ctx context.Context, req *models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, error) {
	if g.client == nil {
		return nil, &ConfigError{Gateway: "Razorpay", Detail: "set RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET"}
	}

	amountPaise := g.amountInPaise(OrderTotal(req.Items))
	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, err
	}

	receipt := "order_unknown"
	if len(req.Items) > 0 {
		receipt = "order_" + req.Items[0].ProductID
	}

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
		"notes": map[string]interface{}{
			"items":          string(itemsJSON),
			"customer_email": req.CustomerEmail,
		},
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, &UpstreamError{Gateway: "Razorpay", Detail: "order creation failed", Err: err}
	}
	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return nil, &UpstreamError{Gateway: "Razorpay", Detail: "order response missing id"}
	}

	return &models.CheckoutSessionResponse{
		SessionID:     orderID,
		URL:           g.frontendURL + "/#checkout",
		PaymentMethod: models.PaymentMethodRazorpay,
		Amount:        amountPaise,
		Currency:      "INR",
		RazorpayKeyID: g.keyID,
	}, nil
}

// VerifySignature recomputes the expected payment signature from
// orderID|paymentID with the shared secret and compares it to the one the
// client submitted.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) error {
	if g.keyID == "" || g.keySecret == "" {
		return &ConfigError{Gateway: "Razorpay", Detail: "set RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET"}
	}
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	if !utils.VerifyPaymentSignature(params, signature, g.keySecret) {
		return &SignatureError{Gateway: "Razorpay"}
	}
	return nil
}
