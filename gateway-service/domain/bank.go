package domain

import "context"

// BankPaymentRequest is the wire shape sent to the acquiring bank. It is
// derived from a validated PaymentRequest and discarded after the call.
type BankPaymentRequest struct {
	CardNumber string
	ExpiryDate string // MM/YYYY
	Currency   string // 3-letter uppercase
	Amount     int64
	CVV        string
}

// NewBankPaymentRequest derives the bank wire request from a validated
// payment request
func NewBankPaymentRequest(request *PaymentRequest) *BankPaymentRequest {
	return &BankPaymentRequest{
		CardNumber: request.CardNumber,
		ExpiryDate: request.BankExpiryDate(),
		Currency:   request.NormalizedCurrency(),
		Amount:     request.Amount,
		CVV:        request.CVV,
	}
}

// BankPaymentResponse is the acquiring bank's verdict
type BankPaymentResponse struct {
	Authorized        bool
	AuthorizationCode string
	ErrorMessage      string
}

// AcquiringBank authorizes payments against the external acquiring bank.
// Implementations make exactly one outbound call per invocation and collapse
// every failure mode into ErrBankUnavailable; the caller only ever sees a
// verdict or an unavailable error.
type AcquiringBank interface {
	ProcessPayment(ctx context.Context, request *BankPaymentRequest) (*BankPaymentResponse, error)
}
