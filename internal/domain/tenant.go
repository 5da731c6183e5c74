package domain

// ItemKind distinguishes the two catalog sequences a tenant maintains.
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)

// Theme holds a tenant's storefront branding.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	LogoURL        string `json:"logo"`
}

// Item is a product or service listed by a tenant. Identifiers are unique
// within a tenant; products and services live in separate sequences.
type Item struct {
	ID          string   `json:"id"`
	Kind        ItemKind `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Tenant is an independent storefront. The ID doubles as the subdomain label
// under the platform suffix. Tenant records are created and mutated by an
// external management process; this service only reads them.
type Tenant struct {
	ID          string `json:"storeId"`
	Name        string `json:"businessName"`
	Description string `json:"description"`
	Theme       Theme  `json:"theme"`
	Products    []Item `json:"products"`
	Services    []Item `json:"services"`
}

// DomainMapping associates an externally registered domain name with a
// tenant. At most one mapping exists per domain; provisioning is external.
type DomainMapping struct {
	Domain  string `json:"domain"`
	StoreID string `json:"storeId"`
}
