package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"minimart-backend/internal/domain"
	"minimart-backend/internal/infrastructure/metrics"
	"minimart-backend/internal/ports"

	"github.com/rs/zerolog"
)

// Config carries everything the adapter needs at construction time. The
// secret key is the already-selected pair for this deployment mode; the
// adapter never consults process state.
type Config struct {
	BaseURL           string
	SecretKey         string
	CommissionPercent float64
	Currency          string
	Country           string
}

type client struct {
	cfg        Config
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Paystack client adapter
func NewClient(cfg Config, logger zerolog.Logger) ports.PaymentGateway {
	return &client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// NewClientWithHTTPClient creates an adapter with a caller-supplied HTTP
// client.
func NewClientWithHTTPClient(cfg Config, httpClient *http.Client, logger zerolog.Logger) ports.PaymentGateway {
	return &client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger,
	}
}

// do performs a single request against the gateway and decodes the native
// envelope. No retries: a transport failure or non-2xx status is surfaced
// immediately.
func (c *client) do(ctx context.Context, operation, method, path string, body any) (*domain.GatewayResponse, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", operation, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GatewayRequests.WithLabelValues(operation, metrics.OutcomeTransport).Inc()
		return nil, &domain.TransportError{Op: operation, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.GatewayRequests.WithLabelValues(operation, metrics.OutcomeTransport).Inc()
		return nil, &domain.TransportError{Op: operation, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var envelope domain.GatewayResponse
	if err := json.Unmarshal(raw, &envelope); err != nil && resp.StatusCode < 300 {
		metrics.GatewayRequests.WithLabelValues(operation, metrics.OutcomeUpstream).Inc()
		return nil, &domain.UpstreamError{
			Message: fmt.Sprintf("%s: undecodable gateway response", operation),
			Payload: raw,
		}
	}
	envelope.Raw = raw

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.GatewayRequests.WithLabelValues(operation, metrics.OutcomeUpstream).Inc()
		c.logger.Warn().
			Str("operation", operation).
			Int("status", resp.StatusCode).
			Str("message", envelope.Message).
			Msg("Gateway reported failure")
		msg := envelope.Message
		if msg == "" {
			msg = fmt.Sprintf("%s: gateway returned status %d", operation, resp.StatusCode)
		}
		return nil, &domain.UpstreamError{Message: msg, Payload: raw}
	}

	metrics.GatewayRequests.WithLabelValues(operation, metrics.OutcomeSuccess).Inc()
	return &envelope, nil
}

// ListBanks returns the gateway's bank directory for the configured country.
func (c *client) ListBanks(ctx context.Context) (*domain.GatewayResponse, error) {
	return c.do(ctx, "list_banks", http.MethodGet, "/bank?country="+url.QueryEscape(c.cfg.Country), nil)
}

// ResolveAccount name-matches a bank account.
func (c *client) ResolveAccount(ctx context.Context, accountNumber, bankCode string) (*domain.GatewayResponse, error) {
	if accountNumber == "" || bankCode == "" {
		return nil, domain.NewInvalidInput("account_number and bank_code are required")
	}

	query := url.Values{}
	query.Set("account_number", accountNumber)
	query.Set("bank_code", bankCode)
	return c.do(ctx, "resolve_account", http.MethodGet, "/bank/resolve?"+query.Encode(), nil)
}

type subaccountRequest struct {
	BusinessName     string  `json:"business_name"`
	AccountNumber    string  `json:"account_number"`
	BankCode         string  `json:"bank_code"`
	PercentageCharge float64 `json:"percentage_charge"`
	SettlementBank   string  `json:"settlement_bank"`
	AccountName      string  `json:"account_name"`
}

// CreateSubaccount registers a vendor's settlement account. The platform
// commission comes from configuration, never a call-site literal.
func (c *client) CreateSubaccount(ctx context.Context, input domain.SubaccountInput) (*domain.GatewayResponse, error) {
	if input.BusinessName == "" || input.AccountNumber == "" || input.BankCode == "" || input.AccountName == "" {
		return nil, domain.NewInvalidInput("businessName, accNo, bankCode and accName are required")
	}

	return c.do(ctx, "create_subaccount", http.MethodPost, "/subaccount", subaccountRequest{
		BusinessName:     input.BusinessName,
		AccountNumber:    input.AccountNumber,
		BankCode:         input.BankCode,
		PercentageCharge: c.cfg.CommissionPercent,
		SettlementBank:   input.BankCode,
		AccountName:      input.AccountName,
	})
}

type splitRequest struct {
	Name             string              `json:"name"`
	Type             string              `json:"type"`
	Currency         string              `json:"currency"`
	Subaccounts      []domain.SplitShare `json:"subaccounts"`
	BearerType       string              `json:"bearer_type"`
	BearerSubaccount string              `json:"bearer_subaccount,omitempty"`
}

// CreateSplit registers a percentage-based revenue split.
func (c *client) CreateSplit(ctx context.Context, input domain.SplitInput) (*domain.GatewayResponse, error) {
	currency := input.Currency
	if currency == "" {
		currency = c.cfg.Currency
	}

	return c.do(ctx, "create_split", http.MethodPost, "/split", splitRequest{
		Name:             input.Name,
		Type:             "percentage",
		Currency:         currency,
		Subaccounts:      input.Shares,
		BearerType:       input.BearerType,
		BearerSubaccount: input.BearerSubaccount,
	})
}

type transactionRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url,omitempty"`
	Subaccount  string `json:"subaccount,omitempty"`
	SplitCode   string `json:"split_code,omitempty"`
}

// InitializeTransaction starts a gateway-hosted checkout.
func (c *client) InitializeTransaction(ctx context.Context, input domain.TransactionInput) (*domain.GatewayResponse, error) {
	if input.Email == "" || input.Amount <= 0 || input.Reference == "" {
		return nil, domain.NewInvalidInput("email, amount and reference are required")
	}
	if err := input.Routing.Validate(); err != nil {
		return nil, err
	}

	return c.do(ctx, "initialize_transaction", http.MethodPost, "/transaction/initialize", transactionRequest{
		Email:       input.Email,
		Amount:      input.Amount,
		Reference:   input.Reference,
		CallbackURL: input.CallbackURL,
		Subaccount:  input.Routing.SubaccountCode,
		SplitCode:   input.Routing.SplitCode,
	})
}

// VerifyTransaction returns the gateway's current state for a reference.
func (c *client) VerifyTransaction(ctx context.Context, reference string) (*domain.GatewayResponse, error) {
	if reference == "" {
		return nil, domain.NewInvalidInput("reference is required")
	}
	return c.do(ctx, "verify_transaction", http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil)
}
