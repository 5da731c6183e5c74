package ports

import (
	"context"

	"minimart-backend/internal/domain"
)

// PaymentGateway defines the payment provider operations this service
// depends on. Each call is a single attempt; failures are never retried.
type PaymentGateway interface {
	// ListBanks returns the gateway's bank directory for the configured
	// country.
	ListBanks(ctx context.Context) (*domain.GatewayResponse, error)

	// ResolveAccount name-matches a bank account. Both parameters are
	// required.
	ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*domain.GatewayResponse, error)

	// CreateSubaccount registers a vendor's settlement account and returns
	// the gateway-assigned subaccount code in the envelope.
	CreateSubaccount(ctx context.Context, input domain.SubaccountInput) (*domain.GatewayResponse, error)

	// CreateSplit registers a percentage-based revenue split.
	CreateSplit(ctx context.Context, input domain.SplitInput) (*domain.GatewayResponse, error)

	// InitializeTransaction starts a gateway-hosted checkout.
	InitializeTransaction(ctx context.Context, input domain.TransactionInput) (*domain.GatewayResponse, error)

	// VerifyTransaction returns the gateway's current state for a
	// reference. This is the only way to learn a transaction's outcome.
	VerifyTransaction(ctx context.Context, reference string) (*domain.GatewayResponse, error)
}
