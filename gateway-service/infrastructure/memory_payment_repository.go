package infrastructure

import (
	"context"
	"sync"

	"github.com/clearroute/payment-gateway/gateway-service/domain"
	"github.com/clearroute/payment-gateway/shared/models"
)

// MemoryPaymentRepository implements PaymentRepository with a process-lifetime
// map. Entries are copied in and out, so a reader observes either a complete
// prior write or none; a Save with an existing id fully overwrites it.
type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[models.ID]domain.Payment
}

// NewMemoryPaymentRepository creates an empty in-memory repository
func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{
		payments: make(map[models.ID]domain.Payment),
	}
}

// Save stores a payment, last writer wins on duplicate ids
func (r *MemoryPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments[payment.ID] = *payment
	return nil
}

// FindByID returns a copy of the stored payment, or (nil, nil) when unknown
func (r *MemoryPaymentRepository) FindByID(ctx context.Context, id models.ID) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	return &payment, nil
}
