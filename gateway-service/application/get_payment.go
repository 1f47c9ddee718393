package application

import (
	"context"

	"github.com/clearroute/payment-gateway/gateway-service/domain"
	"github.com/clearroute/payment-gateway/shared/models"
	"github.com/pkg/errors"
)

// GetPaymentQuery represents the query to look up a payment by id
type GetPaymentQuery struct {
	PaymentID string `json:"payment_id"`
}

// GetPayment use case
type GetPayment struct {
	paymentRepository domain.PaymentRepository
}

// NewGetPayment creates a new GetPayment use case
func NewGetPayment(paymentRepository domain.PaymentRepository) *GetPayment {
	return &GetPayment{
		paymentRepository: paymentRepository,
	}
}

// Execute looks up a stored payment. Unknown ids, ids that are not valid
// UUIDs and rejected payments all resolve to domain.ErrPaymentNotFound, so a
// rejected submission is never observable through lookup.
func (uc *GetPayment) Execute(ctx context.Context, query *GetPaymentQuery) (*PaymentResponse, error) {
	paymentID, err := models.NewID(query.PaymentID)
	if err != nil {
		return nil, domain.ErrPaymentNotFound
	}

	payment, err := uc.paymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payment")
	}

	if payment == nil || payment.Status == domain.PaymentStatusRejected {
		return nil, domain.ErrPaymentNotFound
	}

	return newPaymentResponse(payment), nil
}
