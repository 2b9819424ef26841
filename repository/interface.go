package repository

import (
	"context"
	"errors"

	"portfolio-backend/models"
)

// ErrNotFound is returned by lookups that match no document.
var ErrNotFound = errors.New("not found")

type OrderFilter struct {
	Status string
	Limit  int64 // 0 means no limit
}

// OrderRepository is the order record store. Orders are an append-only
// ledger: there is no delete operation, and the only mutations are the
// status transitions below.
type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	// FindByAnyID looks an order up by its internal id first, then falls
	// back to the gateway session id.
	FindByAnyID(ctx context.Context, id string) (*models.Order, error)
	// List returns orders sorted by createdAt descending.
	List(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	// MarkPaid transitions the pending order with the given session id and
	// payment method to paid, recording the gateway's payment/transaction
	// id. It returns the number of matched documents; zero matches is not an
	// error (replayed webhooks, orphaned sessions). Orders in any other
	// state are left untouched, which makes the operation idempotent under
	// redelivery and keeps terminal states terminal.
	MarkPaid(ctx context.Context, sessionID, method, paymentIntentID string) (int64, error)
	// UpdateStatusByAnyID is the administrative override: any status to any
	// status, matching by internal id first, then session id.
	UpdateStatusByAnyID(ctx context.Context, id, status string) (int64, error)
}

// ContentRepository persists the editable site sections and inbound
// messages. Reads that fail are degraded to defaults by the callers, not
// here.
type ContentRepository interface {
	FindPersonalInfo(ctx context.Context) (*models.PersonalInfo, error)
	InsertPersonalInfo(ctx context.Context, info *models.PersonalInfo) error
	UpdatePersonalInfo(ctx context.Context, upd *models.PersonalInfoUpdate) (*models.PersonalInfo, error)

	ListStats(ctx context.Context) ([]models.Stat, error)
	InsertStat(ctx context.Context, stat *models.Stat) error

	ListServices(ctx context.Context) ([]models.Service, error)
	InsertService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, id string) (int64, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	FindProject(ctx context.Context, id string) (*models.Project, error)
	InsertProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id string) (int64, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	InsertProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) (int64, error)

	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	InsertTestimonial(ctx context.Context, t *models.Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) (int64, error)

	ListSkills(ctx context.Context) ([]models.Skill, error)
	InsertSkill(ctx context.Context, skill *models.Skill) error

	ListNavLinks(ctx context.Context) ([]models.NavLink, error)
	InsertNavLink(ctx context.Context, link *models.NavLink) error
	DeleteNavLink(ctx context.Context, id string) (int64, error)

	InsertContactMessage(ctx context.Context, msg *models.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)

	InsertStatusCheck(ctx context.Context, check *models.StatusCheck) error
	ListStatusChecks(ctx context.Context) ([]models.StatusCheck, error)
}
