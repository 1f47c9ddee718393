package config

import (
	"context"
	"log"

	"github.com/clearroute/payment-gateway/gateway-service/application"
	"github.com/clearroute/payment-gateway/gateway-service/domain"
	"github.com/clearroute/payment-gateway/gateway-service/handlers"
	"github.com/clearroute/payment-gateway/gateway-service/infrastructure"
	"github.com/clearroute/payment-gateway/shared/telemetry"
)

type Dependencies struct {
	// Domain services
	Validator *domain.RequestValidator

	// Infrastructure
	PaymentRepository *infrastructure.MemoryPaymentRepository
	AcquiringBank     *infrastructure.AcquiringBankClient

	// Use Cases
	ProcessPayment *application.ProcessPayment
	GetPayment     *application.GetPayment

	// HTTP Handlers
	PaymentHandlers *handlers.PaymentHandlers

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.GatewayServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			// Continue without telemetry rather than failing
			log.Printf("Failed to initialize telemetry: %v", err)
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	deps.Validator = domain.NewRequestValidator()
	deps.PaymentRepository = infrastructure.NewMemoryPaymentRepository()
	deps.AcquiringBank = infrastructure.NewAcquiringBankClient(config.Bank.URL, config.BankTimeout())

	deps.ProcessPayment = application.NewProcessPayment(deps.Validator, deps.PaymentRepository, deps.AcquiringBank)
	deps.GetPayment = application.NewGetPayment(deps.PaymentRepository)

	deps.PaymentHandlers = handlers.NewPaymentHandlers(deps.ProcessPayment, deps.GetPayment)

	return deps, nil
}

// Close releases all dependencies
func (d *Dependencies) Close() error {
	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}
	return nil
}
