package application

import (
	"context"

	"github.com/clearroute/payment-gateway/gateway-service/domain"
	"github.com/clearroute/payment-gateway/shared/models"
	"github.com/clearroute/payment-gateway/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// ProcessPaymentCommand represents the command to submit a payment
type ProcessPaymentCommand struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         string `json:"cvv"`
}

// PaymentResponse is the masked view of a payment returned to callers.
// The full card number and CVV are never part of it.
type PaymentResponse struct {
	PaymentID      string `json:"id"`
	Status         string `json:"status"`
	LastFourDigits string `json:"last_four_digits"`
	CardExpiryDate string `json:"card_expiry_date"`
	ExpiryMonth    int    `json:"expiry_month"`
	ExpiryYear     int    `json:"expiry_year"`
	Currency       string `json:"currency"`
	Amount         int64  `json:"amount"`
}

func newPaymentResponse(payment *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:      payment.ID.String(),
		Status:         string(payment.Status),
		LastFourDigits: payment.LastFourDigits,
		CardExpiryDate: payment.CardExpiryDate,
		ExpiryMonth:    payment.ExpiryMonth,
		ExpiryYear:     payment.ExpiryYear,
		Currency:       payment.Amount.Currency,
		Amount:         payment.Amount.Amount,
	}
}

// ProcessPayment use case: validate, authorize against the acquiring bank,
// persist the outcome and return the masked result
type ProcessPayment struct {
	validator         *domain.RequestValidator
	paymentRepository domain.PaymentRepository
	acquiringBank     domain.AcquiringBank
}

// NewProcessPayment creates a new ProcessPayment use case
func NewProcessPayment(
	validator *domain.RequestValidator,
	paymentRepository domain.PaymentRepository,
	acquiringBank domain.AcquiringBank,
) *ProcessPayment {
	return &ProcessPayment{
		validator:         validator,
		paymentRepository: paymentRepository,
		acquiringBank:     acquiringBank,
	}
}

// Execute runs one payment submission to a terminal state. A validation
// failure resolves into a normal rejected response; a bank failure surfaces
// as domain.ErrBankUnavailable and nothing is persisted.
func (uc *ProcessPayment) Execute(ctx context.Context, cmd *ProcessPaymentCommand) (*PaymentResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "ProcessPayment")
	defer span.End()

	// The id is minted before validation and is stable for the whole request
	paymentID := models.GenerateUUID()
	span.SetAttributes(attribute.String("payment.id", paymentID.String()))

	request := &domain.PaymentRequest{
		CardNumber:  cmd.CardNumber,
		ExpiryMonth: cmd.ExpiryMonth,
		ExpiryYear:  cmd.ExpiryYear,
		Currency:    cmd.Currency,
		Amount:      cmd.Amount,
		CVV:         cmd.CVV,
	}

	if reason := uc.validator.Validate(request); reason != "" {
		span.SetAttributes(attribute.String("payment.rejection_reason", reason))
		uc.recordOutcome(ctx, domain.PaymentStatusRejected)

		// Rejected is a normal response value, not an error, and is never stored
		payment := domain.NewPayment(paymentID, request, domain.PaymentStatusRejected)
		return newPaymentResponse(payment), nil
	}

	verdict, err := uc.acquiringBank.ProcessPayment(ctx, domain.NewBankPaymentRequest(request))
	if err != nil {
		uc.recordOutcome(ctx, "unavailable")
		return nil, errors.Wrap(err, "bank authorization failed")
	}

	status := domain.PaymentStatusDeclined
	if verdict.Authorized {
		status = domain.PaymentStatusAuthorized
	}

	payment := domain.NewPayment(paymentID, request, status)
	if err := uc.paymentRepository.Save(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to save payment")
	}

	uc.recordOutcome(ctx, status)
	return newPaymentResponse(payment), nil
}

func (uc *ProcessPayment) recordOutcome(ctx context.Context, status domain.PaymentStatus) {
	telemetry.RecordCounter(ctx, "payments_processed_total", "Total processed payment submissions", 1,
		attribute.String("status", string(status)),
	)
}
