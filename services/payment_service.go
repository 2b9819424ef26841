package services

import (
	"context"
	"fmt"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"go.uber.org/zap"
)

// PaymentService is the checkout orchestrator: it picks the gateway for the
// requested method, creates the provider session, and records a pending
// order keyed by the session id.
type PaymentService struct {
	gateways map[string]Gateway
	orders   repository.OrderRepository
	logger   *zap.Logger
}

func NewPaymentService(orders repository.OrderRepository, logger *zap.Logger, gateways ...Gateway) *PaymentService {
	byMethod := make(map[string]Gateway, len(gateways))
	for _, g := range gateways {
		byMethod[g.Method()] = g
	}
	return &PaymentService{
		gateways: byMethod,
		orders:   orders,
		logger:   logger,
	}
}

func (s *PaymentService) CreateCheckoutSession(ctx context.Context, req *models.CheckoutSessionRequest) (*models.CheckoutSessionResponse, error) {
	gateway, ok := s.gateways[req.PaymentMethod]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, req.PaymentMethod)
	}

	session, err := gateway.CreateSession(ctx, req)
	if err != nil {
		return nil, err
	}

	total := OrderTotal(req.Items)
	order := models.NewOrder(req, total, session.SessionID)
	if err := s.orders.Insert(ctx, order); err != nil {
		// The gateway session already exists and money may be in flight, so
		// the buyer is never blocked on a ledger write. Reconciliation
		// tolerates the resulting orphaned session.
		s.logger.Warn("could not save order",
			zap.String("sessionId", session.SessionID),
			zap.String("paymentMethod", req.PaymentMethod),
			zap.Error(err),
		)
	}

	return session, nil
}
