package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/clearroute/payment-gateway/gateway-service/domain"
	"github.com/clearroute/payment-gateway/shared/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// bankPaymentRequest is the JSON body posted to the acquiring bank
type bankPaymentRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	CVV        string `json:"cvv"`
}

// bankPaymentResponse is the JSON verdict returned by the acquiring bank
type bankPaymentResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
	ErrorMessage      string `json:"error_message"`
}

// AcquiringBankClient implements AcquiringBank over the bank's HTTP endpoint.
// Every failure mode, transport error, non-2xx status or unparseable body,
// collapses into domain.ErrBankUnavailable. One outbound call per invocation,
// no retries; a timed-out call is just one more unavailable outcome.
type AcquiringBankClient struct {
	client *http.Client
	url    string
}

// NewAcquiringBankClient creates a client for the bank payment endpoint with
// a bounded request timeout
func NewAcquiringBankClient(url string, timeout time.Duration) *AcquiringBankClient {
	return &AcquiringBankClient{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// ProcessPayment posts the wire request to the bank and decodes its verdict
func (c *AcquiringBankClient) ProcessPayment(ctx context.Context, request *domain.BankPaymentRequest) (*domain.BankPaymentResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "AcquiringBank.ProcessPayment")
	defer span.End()

	start := time.Now()
	verdict, err := c.post(ctx, request)
	telemetry.RecordHistogram(ctx, "bank_request_duration_seconds", "Acquiring bank call duration",
		time.Since(start).Seconds(),
		attribute.Bool("available", err == nil),
	)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Bool("bank.authorized", verdict.Authorized))
	return verdict, nil
}

func (c *AcquiringBankClient) post(ctx context.Context, request *domain.BankPaymentRequest) (*domain.BankPaymentResponse, error) {
	payload, err := json.Marshal(bankPaymentRequest{
		CardNumber: request.CardNumber,
		ExpiryDate: request.ExpiryDate,
		Currency:   request.Currency,
		Amount:     request.Amount,
		CVV:        request.CVV,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal bank request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build bank request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(domain.ErrBankUnavailable, err.Error())
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrapf(domain.ErrBankUnavailable, "bank returned status %d", res.StatusCode)
	}

	var body bankPaymentResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(domain.ErrBankUnavailable, "unparseable bank response body")
	}

	return &domain.BankPaymentResponse{
		Authorized:        body.Authorized,
		AuthorizationCode: body.AuthorizationCode,
		ErrorMessage:      body.ErrorMessage,
	}, nil
}
