package domain

import "encoding/json"

// GatewayResponse is the payment gateway's native response envelope. Success
// responses are echoed to API callers verbatim via Raw.
type GatewayResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`

	Raw json.RawMessage `json:"-"`
}

// SubaccountInput registers a vendor's settlement bank account with the
// gateway. All fields are required.
type SubaccountInput struct {
	BusinessName  string
	AccountNumber string
	BankCode      string
	AccountName   string
}

// TransactionRouting directs a transaction's funds either straight to a
// payee or through a split configuration. Exactly one field must be set.
type TransactionRouting struct {
	SubaccountCode string
	SplitCode      string
}

// Validate enforces the exactly-one rule.
func (r TransactionRouting) Validate() error {
	if r.SubaccountCode != "" && r.SplitCode != "" {
		return NewInvalidInput("supply either subaccount_code or split_code, not both")
	}
	if r.SubaccountCode == "" && r.SplitCode == "" {
		return NewInvalidInput("either subaccount_code or split_code is required")
	}
	return nil
}

// TransactionInput initializes a gateway-hosted checkout. Amount is in the
// smallest currency unit; Reference must be unique per gateway account.
type TransactionInput struct {
	Email       string
	Amount      int64
	Reference   string
	CallbackURL string
	Routing     TransactionRouting
}

// SplitShare ties a payee to a percentage of each transaction.
type SplitShare struct {
	Subaccount string  `json:"subaccount"`
	Share      float64 `json:"share"`
}

// SplitInput creates a percentage-based revenue split on the gateway.
type SplitInput struct {
	Name             string
	Currency         string
	Shares           []SplitShare
	BearerType       string
	BearerSubaccount string
}
