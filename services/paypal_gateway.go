package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"portfolio-backend/models"
)

const (
	paypalSandboxURL = "https://api.sandbox.paypal.com"
	paypalLiveURL    = "https://api.paypal.com"
)

// PayPalGateway drives the redirect flow: OAuth client-credentials
// exchange, order creation, then the buyer is sent to the approval link.
// PayPal's REST API is called directly; the payloads are small enough that
// explicit request/response structs at this boundary beat an SDK.
type PayPalGateway struct {
	clientID     string
	clientSecret string
	baseURL      string
	frontendURL  string
	httpClient   *http.Client
}

func NewPayPalGateway(clientID, clientSecret, mode, frontendURL string, timeout time.Duration) *PayPalGateway {
	baseURL := paypalSandboxURL
	if mode == "live" {
		baseURL = paypalLiveURL
	}
	return &PayPalGateway{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		frontendURL:  frontendURL,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

func (g *PayPalGateway) Method() string { return models.PaymentMethodPayPal }

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalPurchaseUnit struct {
	Amount      paypalAmount `json:"amount"`
	Description string       `json:"description"`
}

type paypalAppContext struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type paypalOrderRequest struct {
	Intent             string               `json:"intent"`
	PurchaseUnits      []paypalPurchaseUnit `json:"purchase_units"`
	ApplicationContext paypalAppContext     `json:"application_context"`
}

type paypalLink struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}

type paypalOrderResponse struct {
	ID    string       `json:"id"`
	Links []paypalLink `json:"links"`
}

func (g *PayPalGateway) CreateSession(ctx context.Context, req *models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, error) {
	if g.clientID == "" || g.clientSecret == "" {
		return nil, &ConfigError{Gateway: "PayPal", Detail: "set PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET"}
	}

	token, err := g.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	total := OrderTotal(req.Items)
	orderReq := paypalOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []paypalPurchaseUnit{{
			Amount: paypalAmount{
				CurrencyCode: "USD",
				Value:        strconv.FormatFloat(total, 'f', 2, 64),
			},
			Description: fmt.Sprintf("Order for %d item(s)", len(req.Items)),
		}},
		ApplicationContext: paypalAppContext{
			ReturnURL: g.frontendURL + "/dashboard?payment=success",
			CancelURL: g.frontendURL + "/#products",
		},
	}

	body, err := json.Marshal(orderReq)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v2/checkout/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{Gateway: "PayPal", Detail: "order creation failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return nil, &UpstreamError{Gateway: "PayPal", Detail: "order creation failed", Status: resp.StatusCode, Body: string(respBody)}
	}

	var order paypalOrderResponse
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, &UpstreamError{Gateway: "PayPal", Detail: "unexpected order response", Err: err}
	}

	approvalURL := ""
	for _, link := range order.Links {
		if link.Rel == "approve" {
			approvalURL = link.Href
			break
		}
	}
	if approvalURL == "" {
		return nil, &UpstreamError{Gateway: "PayPal", Detail: "no approval link in order response", Body: string(respBody)}
	}

	return &models.CheckoutSessionResponse{
		SessionID:     order.ID,
		URL:           approvalURL,
		PaymentMethod: models.PaymentMethodPayPal,
	}, nil
}

func (g *PayPalGateway) accessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.SetBasicAuth(g.clientID, g.clientSecret)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", &UpstreamError{Gateway: "PayPal", Detail: "token exchange failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Gateway: "PayPal", Detail: "token exchange failed", Status: resp.StatusCode, Body: string(respBody)}
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(respBody, &tokenResp); err != nil {
		return "", &UpstreamError{Gateway: "PayPal", Detail: "unexpected token response", Err: err}
	}
	if tokenResp.AccessToken == "" {
		return "", &UpstreamError{Gateway: "PayPal", Detail: "empty access token", Body: string(respBody)}
	}
	return tokenResp.AccessToken, nil
}
