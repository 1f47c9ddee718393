package infrastructure

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/clearroute/payment-gateway/gateway-service/domain"
	"github.com/clearroute/payment-gateway/shared/models"
	"github.com/stretchr/testify/assert"
)

func storedPayment(id models.ID, status domain.PaymentStatus, amount int64, currency string) *domain.Payment {
	return &domain.Payment{
		ID:             id,
		Status:         status,
		LastFourDigits: "3451",
		CardExpiryDate: "12/26",
		ExpiryMonth:    12,
		ExpiryYear:     2026,
		Amount:         models.NewMoney(amount, currency),
	}
}

func TestMemoryPaymentRepository_SaveAndFindByID(t *testing.T) {
	repo := NewMemoryPaymentRepository()
	ctx := context.Background()

	id := models.GenerateUUID()
	payment := storedPayment(id, domain.PaymentStatusAuthorized, 1000, "GBP")

	assert.NoError(t, repo.Save(ctx, payment))

	found, err := repo.FindByID(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, domain.PaymentStatusAuthorized, found.Status)
	assert.Equal(t, int64(1000), found.Amount.Amount)
}

func TestMemoryPaymentRepository_FindByID_Unknown(t *testing.T) {
	repo := NewMemoryPaymentRepository()

	found, err := repo.FindByID(context.Background(), models.GenerateUUID())

	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryPaymentRepository_SaveOverwritesSameID(t *testing.T) {
	repo := NewMemoryPaymentRepository()
	ctx := context.Background()
	id := models.GenerateUUID()

	assert.NoError(t, repo.Save(ctx, storedPayment(id, domain.PaymentStatusAuthorized, 1000, "USD")))
	assert.NoError(t, repo.Save(ctx, storedPayment(id, domain.PaymentStatusDeclined, 2000, "GBP")))

	found, err := repo.FindByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusDeclined, found.Status)
	assert.Equal(t, int64(2000), found.Amount.Amount)
	assert.Equal(t, "GBP", found.Amount.Currency)
}

func TestMemoryPaymentRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryPaymentRepository()
	ctx := context.Background()
	id := models.GenerateUUID()

	original := storedPayment(id, domain.PaymentStatusAuthorized, 1000, "GBP")
	assert.NoError(t, repo.Save(ctx, original))

	// Mutating what the caller holds must not leak into the store
	original.Status = domain.PaymentStatusDeclined

	first, err := repo.FindByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusAuthorized, first.Status)

	first.Amount.Amount = 9999

	second, err := repo.FindByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), second.Amount.Amount)
}

func TestMemoryPaymentRepository_ConcurrentAccess(t *testing.T) {
	repo := NewMemoryPaymentRepository()
	ctx := context.Background()

	const writers = 50
	ids := make([]models.ID, writers)
	for i := range ids {
		ids[i] = models.GenerateUUID()
	}

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payment := storedPayment(ids[i], domain.PaymentStatusAuthorized, int64(i+1), "EUR")
			assert.NoError(t, repo.Save(ctx, payment))
			_, err := repo.FindByID(ctx, ids[i%writers])
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Every write survived the race
	for i, id := range ids {
		found, err := repo.FindByID(ctx, id)
		assert.NoError(t, err)
		if assert.NotNil(t, found, fmt.Sprintf("payment %d missing", i)) {
			assert.Equal(t, int64(i+1), found.Amount.Amount)
		}
	}
}
