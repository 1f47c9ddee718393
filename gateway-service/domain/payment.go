package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/clearroute/payment-gateway/shared/models"
	"github.com/pkg/errors"
)

// PaymentStatus represents the terminal status of a payment submission
type PaymentStatus string

const (
	// PaymentStatusAuthorized means the acquiring bank approved the payment
	PaymentStatusAuthorized PaymentStatus = "authorized"
	// PaymentStatusDeclined means the acquiring bank evaluated and refused the payment
	PaymentStatusDeclined PaymentStatus = "declined"
	// PaymentStatusRejected means the request failed local validation and the
	// bank was never called; rejected payments are never stored
	PaymentStatusRejected PaymentStatus = "rejected"
)

var (
	// ErrPaymentNotFound is returned when a payment id does not resolve to a
	// stored authorized or declined payment
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrBankUnavailable is returned when the acquiring bank could not produce
	// a verdict: transport failure, non-2xx status or an unparseable body
	ErrBankUnavailable = errors.New("acquiring bank unavailable")
)

// PaymentRequest is the untrusted inbound payment submission. It lives only
// for the duration of one request and is never persisted in raw form.
type PaymentRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}

// CardNumberLastFour returns the last four characters of the trimmed card
// number, or the whole trimmed value when shorter than four characters.
func (r *PaymentRequest) CardNumberLastFour() string {
	pan := strings.TrimSpace(r.CardNumber)
	if len(pan) < 4 {
		return pan
	}
	return pan[len(pan)-4:]
}

// BankExpiryDate formats the expiry in the MM/YYYY shape the bank expects
func (r *PaymentRequest) BankExpiryDate() string {
	return fmt.Sprintf("%02d/%04d", r.ExpiryMonth, r.ExpiryYear)
}

// MaskedExpiryDate formats the expiry in the MM/YY shape exposed to callers
func (r *PaymentRequest) MaskedExpiryDate() string {
	return fmt.Sprintf("%02d/%02d", r.ExpiryMonth, r.ExpiryYear%100)
}

// NormalizedCurrency returns the trimmed, uppercased currency code
func (r *PaymentRequest) NormalizedCurrency() string {
	return strings.ToUpper(strings.TrimSpace(r.Currency))
}

// Payment is the masked, queryable outcome of one submission. Only the last
// four card digits survive into it; the full card number and CVV do not.
type Payment struct {
	ID             models.ID
	Status         PaymentStatus
	LastFourDigits string
	CardExpiryDate string
	ExpiryMonth    int
	ExpiryYear     int
	Amount         models.Money
	Timestamps     models.Timestamps
}

// NewPayment builds the stored/returned view of a submission outcome from the
// raw request, masking card data and normalizing the currency.
func NewPayment(id models.ID, request *PaymentRequest, status PaymentStatus) *Payment {
	return &Payment{
		ID:             id,
		Status:         status,
		LastFourDigits: request.CardNumberLastFour(),
		CardExpiryDate: request.MaskedExpiryDate(),
		ExpiryMonth:    request.ExpiryMonth,
		ExpiryYear:     request.ExpiryYear,
		Amount:         models.NewMoney(request.Amount, request.NormalizedCurrency()),
		Timestamps:     models.NewTimestamps(),
	}
}

// Storable reports whether the payment may be written to the repository.
// Rejected payments exist only as a same-request response.
func (p *Payment) Storable() bool {
	return p.Status == PaymentStatusAuthorized || p.Status == PaymentStatusDeclined
}

// PaymentRepository stores masked payment outcomes keyed by payment id.
// FindByID returns (nil, nil) when the id is unknown.
type PaymentRepository interface {
	Save(ctx context.Context, payment *Payment) error
	FindByID(ctx context.Context, id models.ID) (*Payment, error)
}
