package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"minimart-backend/internal/domain"
	"minimart-backend/internal/ports"

	"github.com/rs/zerolog"
)

// SplitService manages the payee and revenue-split lifecycle: it validates
// and submits single-payee percentage splits and, when a store is
// configured, guards payee/split creation against duplicate submission.
type SplitService struct {
	gateway ports.PaymentGateway
	// store is optional; nil disables the idempotency guard and repeat
	// calls create duplicate resources on the gateway.
	store  ports.IdempotencyStore
	logger zerolog.Logger
}

// NewSplitService creates a new split service
func NewSplitService(
	gateway ports.PaymentGateway,
	store ports.IdempotencyStore,
	logger zerolog.Logger,
) *SplitService {
	return &SplitService{
		gateway: gateway,
		store:   store,
		logger:  logger,
	}
}

// splitCodeData is the slice of the gateway's split payload this service
// depends on.
type splitCodeData struct {
	SplitCode string `json:"split_code"`
}

// CreateSplit submits a single-payee percentage split. The vendor's payee is
// both the sole recipient and the fee bearer; the platform's implicit share
// is 100 minus the vendor share. Validation happens before any network call.
func (s *SplitService) CreateSplit(ctx context.Context, payeeID string, vendorShare float64, name string) (*domain.GatewayResponse, error) {
	if payeeID == "" {
		return nil, domain.NewInvalidInput("subaccount_code is required")
	}
	if vendorShare < 0 || vendorShare > 100 {
		return nil, domain.NewInvalidInput("vendorShare must be between 0 and 100")
	}
	if name == "" {
		name = payeeID + "-split"
	}

	key := inputHash("split", payeeID, strconv.FormatFloat(vendorShare, 'f', -1, 64), name)
	if resp, ok := s.replay(ctx, key); ok {
		s.logger.Info().
			Str("payee", payeeID).
			Msg("Replaying stored split envelope")
		return resp, nil
	}

	resp, err := s.gateway.CreateSplit(ctx, domain.SplitInput{
		Name:             name,
		Shares:           []domain.SplitShare{{Subaccount: payeeID, Share: vendorShare}},
		BearerType:       "subaccount",
		BearerSubaccount: payeeID,
	})
	if err != nil {
		return nil, err
	}

	// A 2xx envelope without a split code is a gateway contract violation,
	// not a transport failure.
	var data splitCodeData
	if err := json.Unmarshal(resp.Data, &data); err != nil || data.SplitCode == "" {
		return nil, &domain.UpstreamError{
			Message: "gateway accepted split but returned no split code",
			Payload: resp.Raw,
		}
	}

	s.record(ctx, key, resp.Raw)

	s.logger.Info().
		Str("payee", payeeID).
		Float64("vendorShare", vendorShare).
		Str("splitCode", data.SplitCode).
		Msg("Created revenue split")

	return resp, nil
}

// RegisterPayee registers a vendor's settlement account, short-circuiting on
// a repeat submission when the guard is enabled.
func (s *SplitService) RegisterPayee(ctx context.Context, input domain.SubaccountInput) (*domain.GatewayResponse, error) {
	key := inputHash("payee", input.BusinessName, input.AccountNumber, input.BankCode, input.AccountName)
	if resp, ok := s.replay(ctx, key); ok {
		s.logger.Info().
			Str("businessName", input.BusinessName).
			Msg("Replaying stored subaccount envelope")
		return resp, nil
	}

	resp, err := s.gateway.CreateSubaccount(ctx, input)
	if err != nil {
		return nil, err
	}

	s.record(ctx, key, resp.Raw)
	return resp, nil
}

// replay returns a previously stored envelope for key, if any. Guard
// failures are logged and treated as misses.
func (s *SplitService) replay(ctx context.Context, key string) (*domain.GatewayResponse, bool) {
	if s.store == nil {
		return nil, false
	}

	body, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Idempotency lookup failed, proceeding to gateway")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var resp domain.GatewayResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		s.logger.Warn().Err(err).Msg("Stored envelope undecodable, proceeding to gateway")
		return nil, false
	}
	resp.Raw = body
	return &resp, true
}

// record stores a success envelope for replay. Best effort only.
func (s *SplitService) record(ctx context.Context, key string, body []byte) {
	if s.store == nil {
		return
	}
	if err := s.store.Set(ctx, key, body); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to record idempotency key")
	}
}

func inputHash(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%s\x00", p)
	}
	return hex.EncodeToString(h.Sum(nil))
}
