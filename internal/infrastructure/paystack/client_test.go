package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"minimart-backend/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:           baseURL,
		SecretKey:         "sk_test_abc",
		CommissionPercent: 1,
		Currency:          "NGN",
		Country:           "nigeria",
	}
}

// recordingServer captures the last request for payload assertions.
type recordingServer struct {
	*httptest.Server
	method  string
	path    string
	query   string
	auth    string
	body    map[string]any
	hits    int
	respond func(w http.ResponseWriter)
}

func newRecordingServer(t *testing.T) *recordingServer {
	t.Helper()
	rs := &recordingServer{
		respond: func(w http.ResponseWriter) {
			_, _ = w.Write([]byte(`{"status":true,"message":"ok","data":{}}`))
		},
	}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.hits++
		rs.method = r.Method
		rs.path = r.URL.Path
		rs.query = r.URL.RawQuery
		rs.auth = r.Header.Get("Authorization")
		rs.body = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rs.body)
		}
		w.Header().Set("Content-Type", "application/json")
		rs.respond(w)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func TestListBanks(t *testing.T) {
	srv := newRecordingServer(t)
	srv.respond = func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`{"status":true,"message":"Banks retrieved","data":[{"name":"GTBank","code":"058"}]}`))
	}
	c := NewClient(testConfig(srv.URL), zerolog.Nop())

	resp, err := c.ListBanks(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, srv.method)
	assert.Equal(t, "/bank", srv.path)
	assert.Equal(t, "country=nigeria", srv.query)
	assert.Equal(t, "Bearer sk_test_abc", srv.auth)
	assert.True(t, resp.Status)
	assert.Contains(t, string(resp.Raw), "GTBank")
}

func TestResolveAccountRequiresBothParameters(t *testing.T) {
	srv := newRecordingServer(t)
	c := NewClient(testConfig(srv.URL), zerolog.Nop())

	_, err := c.ResolveAccount(context.Background(), "", "058")
	assert.True(t, domain.IsInvalidInput(err))

	_, err = c.ResolveAccount(context.Background(), "0001112223", "")
	assert.True(t, domain.IsInvalidInput(err))

	assert.Zero(t, srv.hits, "validation failures must not reach the gateway")
}

func TestResolveAccountForwardsQuery(t *testing.T) {
	srv := newRecordingServer(t)
	c := NewClient(testConfig(srv.URL), zerolog.Nop())

	_, err := c.ResolveAccount(context.Background(), "0001112223", "058")

	require.NoError(t, err)
	assert.Equal(t, "/bank/resolve", srv.path)
	assert.Contains(t, srv.query, "account_number=0001112223")
	assert.Contains(t, srv.query, "bank_code=058")
}

func TestCreateSubaccountPayload(t *testing.T) {
	srv := newRecordingServer(t)
	cfg := testConfig(srv.URL)
	cfg.CommissionPercent = 2.5
	c := NewClient(cfg, zerolog.Nop())

	_, err := c.CreateSubaccount(context.Background(), domain.SubaccountInput{
		BusinessName:  "Acme Stores",
		AccountNumber: "0001112223",
		BankCode:      "058",
		AccountName:   "ACME STORES LTD",
	})

	require.NoError(t, err)
	assert.Equal(t, "/subaccount", srv.path)
	assert.Equal(t, "Acme Stores", srv.body["business_name"])
	assert.Equal(t, "0001112223", srv.body["account_number"])
	assert.Equal(t, "058", srv.body["settlement_bank"])
	assert.Equal(t, 2.5, srv.body["percentage_charge"])
	assert.Equal(t, "ACME STORES LTD", srv.body["account_name"])
}

func TestCreateSubaccountRequiresAllFields(t *testing.T) {
	srv := newRecordingServer(t)
	c := NewClient(testConfig(srv.URL), zerolog.Nop())

	_, err := c.CreateSubaccount(context.Background(), domain.SubaccountInput{
		BusinessName:  "Acme Stores",
		AccountNumber: "0001112223",
		BankCode:      "058",
	})

	assert.True(t, domain.IsInvalidInput(err))
	assert.Zero(t, srv.hits)
}

func TestInitializeTransactionRequiresReference(t *testing.T) {
	srv := newRecordingServer(t)
	c := NewClient(testConfig(srv.URL), zerolog.Nop())

	_, err := c.InitializeTransaction(context.Background(), domain.TransactionInput{
		Email:   "buyer@example.com",
		Amount:  500000,
		Routing: domain.TransactionRouting{SubaccountCode: "ACCT_1"},
	})

	assert.True(t, domain.IsInvalidInput(err))
	assert.Zero(t, srv.hits)
}

func TestInitializeTransactionRoutingExclusivity(t *testing.T) {
	srv := newRecordingServer(t)
	c := NewClient(testConfig(srv.URL), zerolog.Nop())

	base := domain.TransactionInput{
		Email:     "buyer@example.com",
		Amount:    500000,
		Reference: "ref-001",
	}

	both := base
	both.Routing = domain.TransactionRouting{SubaccountCode: "ACCT_1", SplitCode: "SPL_1"}
	_, err := c.InitializeTransaction(context.Background(), both)
	assert.True(t, domain.IsInvalidInput(err), "both routing fields must be rejected")

	_, err = c.InitializeTransaction(context.Background(), base)
	assert.True(t, domain.IsInvalidInput(err), "missing routing must be rejected")

	assert.Zero(t, srv.hits)
}

func TestInitializeTransactionPayload(t *testing.T) {
	srv := newRecordingServer(t)
	c := NewClient(testConfig(srv.URL), zerolog.Nop())

	_, err := c.InitializeTransaction(context.Background(), domain.TransactionInput{
		Email:       "buyer@example.com",
		Amount:      500000,
		Reference:   "ref-001",
		CallbackURL: "https://acme.minimart.ng/thanks",
		Routing:     domain.TransactionRouting{SplitCode: "SPL_1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "/transaction/initialize", srv.path)
	assert.Equal(t, "buyer@example.com", srv.body["email"])
	assert.Equal(t, float64(500000), srv.body["amount"])
	assert.Equal(t, "ref-001", srv.body["reference"])
	assert.Equal(t, "SPL_1", srv.body["split_code"])
	_, hasSubaccount := srv.body["subaccount"]
	assert.False(t, hasSubaccount, "unused routing field must be omitted")
}

func TestVerifyTransaction(t *testing.T) {
	srv := newRecordingServer(t)
	srv.respond = func(w http.ResponseWriter) {
		_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success"}}`))
	}
	c := NewClient(testConfig(srv.URL), zerolog.Nop())

	resp, err := c.VerifyTransaction(context.Background(), "ref-001")

	require.NoError(t, err)
	assert.Equal(t, "/transaction/verify/ref-001", srv.path)
	assert.Contains(t, string(resp.Raw), "Verification successful")
}

func TestGatewayFailurePropagated(t *testing.T) {
	srv := newRecordingServer(t)
	srv.respond = func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":false,"message":"Invalid bank code"}`))
	}
	c := NewClient(testConfig(srv.URL), zerolog.Nop())

	_, err := c.ResolveAccount(context.Background(), "0001112223", "999")

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Invalid bank code", upstream.Message)
	assert.JSONEq(t, `{"status":false,"message":"Invalid bank code"}`, string(upstream.Payload))
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	c := NewClient(testConfig(url), zerolog.Nop())

	_, err := c.ListBanks(context.Background())

	var transport *domain.TransportError
	require.ErrorAs(t, err, &transport)
}
