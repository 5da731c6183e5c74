package entity

import (
	"minimart-backend/internal/domain"
)

// MongoThemeDoc mirrors the customTheme sub-document on a business record.
type MongoThemeDoc struct {
	PrimaryColor   string `bson:"primaryColor,omitempty"`
	SecondaryColor string `bson:"secondaryColor,omitempty"`
	Logo           string `bson:"logo,omitempty"`
}

// MongoProductDoc is an entry in the products sequence.
type MongoProductDoc struct {
	ProdID      string   `bson:"prodId"`
	Name        string   `bson:"name"`
	Description string   `bson:"description,omitempty"`
	Images      []string `bson:"images,omitempty"`
}

// MongoServiceDoc is an entry in the services sequence.
type MongoServiceDoc struct {
	ServiceID   string   `bson:"serviceId"`
	Name        string   `bson:"name"`
	Description string   `bson:"description,omitempty"`
	Images      []string `bson:"images,omitempty"`
}

// MongoBusinessDoc represents a tenant in the businesses collection. The
// document id is the store id, which doubles as the subdomain label.
type MongoBusinessDoc struct {
	ID           string            `bson:"_id"`
	BusinessName string            `bson:"businessName"`
	Description  string            `bson:"description,omitempty"`
	CustomTheme  MongoThemeDoc     `bson:"customTheme,omitempty"`
	Products     []MongoProductDoc `bson:"products,omitempty"`
	Services     []MongoServiceDoc `bson:"services,omitempty"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *MongoBusinessDoc) ToDomain() *domain.Tenant {
	t := &domain.Tenant{
		ID:          d.ID,
		Name:        d.BusinessName,
		Description: d.Description,
		Theme: domain.Theme{
			PrimaryColor:   d.CustomTheme.PrimaryColor,
			SecondaryColor: d.CustomTheme.SecondaryColor,
			LogoURL:        d.CustomTheme.Logo,
		},
	}
	for _, p := range d.Products {
		t.Products = append(t.Products, domain.Item{
			ID:          p.ProdID,
			Kind:        domain.ItemKindProduct,
			Name:        p.Name,
			Description: p.Description,
			Images:      p.Images,
		})
	}
	for _, s := range d.Services {
		t.Services = append(t.Services, domain.Item{
			ID:          s.ServiceID,
			Kind:        domain.ItemKindService,
			Name:        s.Name,
			Description: s.Description,
			Images:      s.Images,
		})
	}
	return t
}

// MongoDomainMappingDoc represents a row in the customDomains collection.
type MongoDomainMappingDoc struct {
	Domain  string `bson:"domain"`
	StoreID string `bson:"storeId"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *MongoDomainMappingDoc) ToDomain() *domain.DomainMapping {
	return &domain.DomainMapping{
		Domain:  d.Domain,
		StoreID: d.StoreID,
	}
}
