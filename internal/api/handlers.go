package api

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"minimart-backend/internal/application"
	"minimart-backend/internal/domain"
	"minimart-backend/internal/ports"
	"minimart-backend/internal/render"
)

// Theme color fallbacks applied when a tenant has not customized its
// storefront.
const (
	defaultPrimaryColor   = "#1C2230"
	defaultSecondaryColor = "#43B5F4"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	directory *application.DirectoryService
	catalog   *application.CatalogService
	splits    *application.SplitService
	gateway   ports.PaymentGateway
	metadata  *render.MetadataRenderer
	shell     *render.Shell
	logger    zerolog.Logger
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"status": false, "message": msg})
}

// writeEnvelope echoes the gateway's native response body verbatim.
func writeEnvelope(w http.ResponseWriter, resp *domain.GatewayResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.Raw)
}

// writeFailure translates the error taxonomy to HTTP. Caller input errors
// are 400, absent records 404 (a normal outcome, never logged as an error),
// and upstream or transport failures 500.
func (h *Handlers) writeFailure(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, invalid.Message)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var upstream *domain.UpstreamError
	if errors.As(err, &upstream) {
		h.logger.Error().Str("message", upstream.Message).Msg("Upstream failure")
		writeError(w, http.StatusInternalServerError, upstream.Message)
		return
	}

	h.logger.Error().Err(err).Msg("Request failed")
	writeError(w, http.StatusInternalServerError, "server error")
}

// hostOnly strips a :port suffix from the Host header; the port is
// transport framing, not part of the host name.
func hostOnly(hostport string) string {
	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		return hostport
	}
	return host
}

func requestURL(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil && r.Header.Get("X-Forwarded-Proto") != "https" {
		scheme = "http"
	}
	return scheme + "://" + r.Host + r.URL.Path
}

// --- storefront ---

// Storefront resolves the tenant from the request host and renders either
// the metadata document (automated clients) or the SPA shell.
func (h *Handlers) Storefront(w http.ResponseWriter, r *http.Request) {
	h.renderStorefront(w, r, "")
}

// StorefrontItem renders a single product or service page.
func (h *Handlers) StorefrontItem(w http.ResponseWriter, r *http.Request) {
	h.renderStorefront(w, r, chi.URLParam(r, "id"))
}

func (h *Handlers) renderStorefront(w http.ResponseWriter, r *http.Request, itemID string) {
	ctx := r.Context()

	storeID, err := h.directory.Resolve(ctx, hostOnly(r.Host))
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	tenant, err := h.catalog.GetTenant(ctx, storeID)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	var item *domain.Item
	if itemID != "" {
		item, err = h.catalog.FindItem(tenant, itemID)
		if err != nil {
			h.writeFailure(w, err)
			return
		}
	}

	if application.Classify(r.UserAgent()) == application.Interactive {
		h.shell.Serve(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.metadata.Render(w, render.TenantPage(tenant, item, requestURL(r))); err != nil {
		h.logger.Error().Err(err).Str("storeId", storeID).Msg("Failed to render metadata document")
	}
}

// --- store JSON API ---

type storeProfile struct {
	BusinessName   string `json:"businessName"`
	Description    string `json:"description"`
	Logo           string `json:"logo,omitempty"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

func profileOf(t *domain.Tenant) storeProfile {
	p := storeProfile{
		BusinessName:   t.Name,
		Description:    t.Description,
		Logo:           t.Theme.LogoURL,
		PrimaryColor:   t.Theme.PrimaryColor,
		SecondaryColor: t.Theme.SecondaryColor,
	}
	if p.PrimaryColor == "" {
		p.PrimaryColor = defaultPrimaryColor
	}
	if p.SecondaryColor == "" {
		p.SecondaryColor = defaultSecondaryColor
	}
	return p
}

// GetStore returns a store's profile for the SPA frontend.
func (h *Handlers) GetStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeId")

	tenant, err := h.catalog.GetTenant(r.Context(), storeID)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"storeId": storeID,
		"biz":     profileOf(tenant),
	})
}

// GetStoreItem returns a single item with its store profile.
func (h *Handlers) GetStoreItem(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeId")
	itemID := chi.URLParam(r, "itemId")

	tenant, err := h.catalog.GetTenant(r.Context(), storeID)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	item, err := h.catalog.FindItem(tenant, itemID)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"storeId":  storeID,
		"product":  item,
		"business": profileOf(tenant),
	})
}

// --- payments ---

// ListBanks returns the gateway's bank directory.
func (h *Handlers) ListBanks(w http.ResponseWriter, r *http.Request) {
	resp, err := h.gateway.ListBanks(r.Context())
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeEnvelope(w, resp)
}

// ValidateAccount name-matches a bank account.
func (h *Handlers) ValidateAccount(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := h.gateway.ResolveAccount(r.Context(), q.Get("account_number"), q.Get("bank_code"))
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeEnvelope(w, resp)
}

type subaccountRequest struct {
	BusinessName string `json:"businessName"`
	AccNo        string `json:"accNo"`
	BankCode     string `json:"bankCode"`
	AccName      string `json:"accName"`
}

// CreateSubaccount registers a vendor's settlement bank account.
func (h *Handlers) CreateSubaccount(w http.ResponseWriter, r *http.Request) {
	var req subaccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.splits.RegisterPayee(r.Context(), domain.SubaccountInput{
		BusinessName:  req.BusinessName,
		AccountNumber: req.AccNo,
		BankCode:      req.BankCode,
		AccountName:   req.AccName,
	})
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeEnvelope(w, resp)
}

type payRequest struct {
	Email          string `json:"email"`
	Amount         int64  `json:"amount"`
	Reference      string `json:"reference"`
	CallbackURL    string `json:"callback_url"`
	SubaccountCode string `json:"subaccount_code"`
	SplitCode      string `json:"split_code"`
}

// InitializePayment starts a gateway-hosted checkout.
func (h *Handlers) InitializePayment(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.gateway.InitializeTransaction(r.Context(), domain.TransactionInput{
		Email:       req.Email,
		Amount:      req.Amount,
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
		Routing: domain.TransactionRouting{
			SubaccountCode: req.SubaccountCode,
			SplitCode:      req.SplitCode,
		},
	})
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeEnvelope(w, resp)
}

// VerifyPayment returns the gateway's state for a transaction reference.
// Verification is pull-based; this is the only way to learn an outcome.
func (h *Handlers) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	resp, err := h.gateway.VerifyTransaction(r.Context(), chi.URLParam(r, "reference"))
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeEnvelope(w, resp)
}

type createSplitRequest struct {
	SubaccountCode string   `json:"subaccount_code"`
	VendorShare    *float64 `json:"vendorShare"`
	SplitName      string   `json:"splitName"`
}

// CreateSplit registers a revenue split routing a vendor share to a payee.
func (h *Handlers) CreateSplit(w http.ResponseWriter, r *http.Request) {
	var req createSplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.VendorShare == nil {
		writeError(w, http.StatusBadRequest, "vendorShare is required")
		return
	}

	resp, err := h.splits.CreateSplit(r.Context(), req.SubaccountCode, *req.VendorShare, req.SplitName)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	writeEnvelope(w, resp)
}
