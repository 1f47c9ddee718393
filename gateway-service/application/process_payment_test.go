package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/clearroute/payment-gateway/gateway-service/domain"
	"github.com/clearroute/payment-gateway/gateway-service/mocks"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fixedClock() time.Time {
	return time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
}

func validCommand() *ProcessPaymentCommand {
	return &ProcessPaymentCommand{
		CardNumber:  "1234567890123451",
		ExpiryMonth: 12,
		ExpiryYear:  2026,
		Currency:    "GBP",
		Amount:      1000,
		CVV:         "123",
	}
}

func newProcessPayment(repo *mocks.MockPaymentRepository, bank *mocks.MockAcquiringBank) *ProcessPayment {
	return NewProcessPayment(domain.NewRequestValidatorWithClock(fixedClock), repo, bank)
}

func TestProcessPayment_Execute_Authorized(t *testing.T) {
	repo := mocks.NewMockPaymentRepository(t)
	bank := mocks.NewMockAcquiringBank(t)

	bank.EXPECT().ProcessPayment(mock.Anything, mock.Anything).
		Return(&domain.BankPaymentResponse{Authorized: true, AuthorizationCode: "auth-123"}, nil).Once()

	var saved *domain.Payment
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, payment *domain.Payment) {
			saved = payment
		}).
		Return(nil).Once()

	response, err := newProcessPayment(repo, bank).Execute(context.Background(), validCommand())

	assert.NoError(t, err)
	assert.NotNil(t, response)
	assert.NotEmpty(t, response.PaymentID)
	assert.Equal(t, "authorized", response.Status)
	assert.Equal(t, "3451", response.LastFourDigits)
	assert.Equal(t, "12/26", response.CardExpiryDate)
	assert.Equal(t, "GBP", response.Currency)
	assert.Equal(t, int64(1000), response.Amount)

	assert.NotNil(t, saved)
	assert.Equal(t, domain.PaymentStatusAuthorized, saved.Status)
	assert.Equal(t, response.PaymentID, saved.ID.String())
}

func TestProcessPayment_Execute_Declined(t *testing.T) {
	repo := mocks.NewMockPaymentRepository(t)
	bank := mocks.NewMockAcquiringBank(t)

	bank.EXPECT().ProcessPayment(mock.Anything, mock.Anything).
		Return(&domain.BankPaymentResponse{Authorized: false, ErrorMessage: "insufficient funds"}, nil).Once()

	var saved *domain.Payment
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, payment *domain.Payment) {
			saved = payment
		}).
		Return(nil).Once()

	response, err := newProcessPayment(repo, bank).Execute(context.Background(), validCommand())

	assert.NoError(t, err)
	assert.Equal(t, "declined", response.Status)
	assert.Equal(t, domain.PaymentStatusDeclined, saved.Status)
}

func TestProcessPayment_Execute_RejectedSkipsBankAndStore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *ProcessPaymentCommand)
	}{
		{"short card number", func(cmd *ProcessPaymentCommand) { cmd.CardNumber = "1234567890123" }},
		{"invalid expiry month", func(cmd *ProcessPaymentCommand) { cmd.ExpiryMonth = 13 }},
		{"expired card", func(cmd *ProcessPaymentCommand) { cmd.ExpiryMonth = 6; cmd.ExpiryYear = 2025 }},
		{"unsupported currency", func(cmd *ProcessPaymentCommand) { cmd.Currency = "JPY" }},
		{"zero amount", func(cmd *ProcessPaymentCommand) { cmd.Amount = 0 }},
		{"bad cvv", func(cmd *ProcessPaymentCommand) { cmd.CVV = "12" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: the bank is never called and nothing is stored
			repo := mocks.NewMockPaymentRepository(t)
			bank := mocks.NewMockAcquiringBank(t)

			cmd := validCommand()
			tt.mutate(cmd)

			response, err := newProcessPayment(repo, bank).Execute(context.Background(), cmd)

			assert.NoError(t, err)
			assert.NotNil(t, response)
			assert.Equal(t, "rejected", response.Status)
			assert.NotEmpty(t, response.PaymentID)
			bank.AssertNotCalled(t, "ProcessPayment")
			repo.AssertNotCalled(t, "Save")
		})
	}
}

func TestProcessPayment_Execute_BankUnavailable(t *testing.T) {
	repo := mocks.NewMockPaymentRepository(t)
	bank := mocks.NewMockAcquiringBank(t)

	bank.EXPECT().ProcessPayment(mock.Anything, mock.Anything).
		Return(nil, pkgerrors.Wrap(domain.ErrBankUnavailable, "bank returned status 503")).Once()

	response, err := newProcessPayment(repo, bank).Execute(context.Background(), validCommand())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBankUnavailable))
	assert.Nil(t, response)
	repo.AssertNotCalled(t, "Save")
}

func TestProcessPayment_Execute_NormalizesCurrencyOnWireRequest(t *testing.T) {
	repo := mocks.NewMockPaymentRepository(t)
	bank := mocks.NewMockAcquiringBank(t)

	var wire *domain.BankPaymentRequest
	bank.EXPECT().ProcessPayment(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, request *domain.BankPaymentRequest) {
			wire = request
		}).
		Return(&domain.BankPaymentResponse{Authorized: true}, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	cmd := validCommand()
	cmd.Currency = "gbp"

	response, err := newProcessPayment(repo, bank).Execute(context.Background(), cmd)

	assert.NoError(t, err)
	assert.Equal(t, "GBP", wire.Currency)
	assert.Equal(t, "12/2026", wire.ExpiryDate)
	assert.Equal(t, "GBP", response.Currency)
}

func TestProcessPayment_Execute_SaveError(t *testing.T) {
	repo := mocks.NewMockPaymentRepository(t)
	bank := mocks.NewMockAcquiringBank(t)

	bank.EXPECT().ProcessPayment(mock.Anything, mock.Anything).
		Return(&domain.BankPaymentResponse{Authorized: true}, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Return(errors.New("store failure")).Once()

	response, err := newProcessPayment(repo, bank).Execute(context.Background(), validCommand())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save payment")
	assert.Nil(t, response)
}

func TestProcessPayment_Execute_ResponseNeverSerializesCardData(t *testing.T) {
	repo := mocks.NewMockPaymentRepository(t)
	bank := mocks.NewMockAcquiringBank(t)

	bank.EXPECT().ProcessPayment(mock.Anything, mock.Anything).
		Return(&domain.BankPaymentResponse{Authorized: true}, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	cmd := validCommand()
	response, err := newProcessPayment(repo, bank).Execute(context.Background(), cmd)
	assert.NoError(t, err)

	serialized, err := json.Marshal(response)
	assert.NoError(t, err)
	assert.NotContains(t, string(serialized), cmd.CardNumber)

	var fields map[string]interface{}
	assert.NoError(t, json.Unmarshal(serialized, &fields))
	assert.NotContains(t, fields, "card_number")
	assert.NotContains(t, fields, "cvv")
	assert.Equal(t, "3451", fields["last_four_digits"])
}
