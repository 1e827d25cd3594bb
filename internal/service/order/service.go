package order

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"lumina-storefront/internal/domain"
	"lumina-storefront/internal/notify"
	orderrepo "lumina-storefront/internal/repository/order"
	"github.com/google/uuid"
)

// algerianMobile is the validation policy of record: a 10-digit local mobile
// number starting with 05, 06 or 07.
var algerianMobile = regexp.MustCompile(`^(05|06|07)[0-9]{8}$`)

// Service owns the checkout state machine: it validates customer input,
// freezes the financial snapshot, persists the order with its sale record,
// and applies admin status transitions.
type Service struct {
	orders   orderrepo.Repository
	carts    cartStore
	fees     feeResolver
	notifier notify.Notifier
	now      func() time.Time
}

type cartStore interface {
	Get(sessionID string) domain.Cart
	Clear(sessionID string)
}

type feeResolver interface {
	ResolveFee(ctx context.Context, wilaya string, mode domain.DeliveryMode, cartIsEmpty bool) (int64, error)
}

func New(orders orderrepo.Repository, carts cartStore, fees feeResolver, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Service{
		orders:   orders,
		carts:    carts,
		fees:     fees,
		notifier: notifier,
		now:      time.Now,
	}
}

// CheckoutInput is the customer form as submitted by the storefront.
type CheckoutInput struct {
	CustomerName string              `json:"customerName"`
	Phone        string              `json:"phone"`
	Wilaya       string              `json:"wilaya"`
	Commune      string              `json:"commune"`
	Address      string              `json:"address"`
	DeliveryMode domain.DeliveryMode `json:"deliveryMode"`
}

// Quote is a price preview for the current cart and delivery choice.
type Quote struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
}

func (s *Service) validate(in CheckoutInput) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return &domain.ValidationError{Field: "customerName", Reason: "required"}
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return &domain.ValidationError{Field: "phone", Reason: "required"}
	}
	if !algerianMobile.MatchString(phone) {
		return &domain.ValidationError{Field: "phone", Reason: "must be 05, 06 or 07 followed by 8 digits"}
	}
	if strings.TrimSpace(in.Wilaya) == "" {
		return &domain.ValidationError{Field: "wilaya", Reason: "required"}
	}
	if !in.DeliveryMode.Valid() {
		return &domain.ValidationError{Field: "deliveryMode", Reason: "must be home or pickup"}
	}
	return nil
}

// PriceQuote computes subtotal, delivery fee and total for the session's
// current cart without any side effect.
func (s *Service) PriceQuote(ctx context.Context, sessionID string, wilaya string, mode domain.DeliveryMode) (Quote, error) {
	cart := s.carts.Get(sessionID)
	fee, err := s.fees.ResolveFee(ctx, wilaya, mode, cart.IsEmpty())
	if err != nil {
		return Quote{}, err
	}
	subtotal := cart.Subtotal()
	return Quote{Subtotal: subtotal, DeliveryFee: fee, Total: subtotal + fee}, nil
}

// BuildOrder validates the form and assembles the immutable order snapshot.
// It has no side effects; Checkout persists.
func (s *Service) BuildOrder(ctx context.Context, sessionID string, in CheckoutInput) (*domain.Order, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	cart := s.carts.Get(sessionID)
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	fee, err := s.fees.ResolveFee(ctx, in.Wilaya, in.DeliveryMode, false)
	if err != nil {
		return nil, err
	}
	subtotal := cart.Subtotal()

	return &domain.Order{
		ID:           uuid.NewString(),
		CustomerName: strings.TrimSpace(in.CustomerName),
		Phone:        strings.TrimSpace(in.Phone),
		Wilaya:       in.Wilaya,
		Commune:      strings.TrimSpace(in.Commune),
		Address:      strings.TrimSpace(in.Address),
		DeliveryMode: in.DeliveryMode,
		DeliveryFee:  fee,
		Lines:        cart.Lines,
		Total:        subtotal + fee,
		Status:       domain.StatusPending,
		CreatedAt:    s.now().UTC(),
	}, nil
}

// Checkout builds and submits the order. The cart is cleared only after the
// write succeeds; a failed submission leaves it intact so the customer can
// retry.
func (s *Service) Checkout(ctx context.Context, sessionID string, in CheckoutInput) (*domain.Order, error) {
	o, err := s.BuildOrder(ctx, sessionID, in)
	if err != nil {
		s.notifier.Notify(ctx, fmt.Sprintf("commande refusée: %v", err), notify.Error)
		return nil, err
	}
	if err := s.orders.Submit(ctx, *o); err != nil {
		s.notifier.Notify(ctx, "échec de l'enregistrement de la commande", notify.Error)
		return nil, fmt.Errorf("submit order: %w", err)
	}
	s.carts.Clear(sessionID)
	s.notifier.Notify(ctx, "Commande validée !", notify.Success)
	return o, nil
}

// UpdateStatus overwrites the status of the given order. Transitions are
// permissive: the admin can move an order to any recognized status, and
// re-applying the current status is a harmless overwrite.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !status.Valid() {
		return &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.notifier.Notify(ctx, "Statut mis à jour.", notify.Info)
	return nil
}

// Get returns one order by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// List returns all orders, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// ListSales returns the sales ledger for reporting.
func (s *Service) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	return s.orders.ListSales(ctx)
}
