package render

import (
	"fmt"
	"html/template"
	"io"

	"minimart-backend/internal/domain"
)

// defaultDescription is the fixed fallback when neither the item nor the
// tenant carries a description.
const defaultDescription = "Discover products and services on Minimart."

// Page carries the discovery/sharing metadata interpolated into the
// document. All values pass through html/template, so tenant-supplied text
// cannot break out of its markup context.
type Page struct {
	Title       string
	Description string
	Image       string
	URL         string
	Type        string
	SiteName    string
	ThemeColor  string
}

const metadataDocument = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
{{if .ThemeColor}}<meta name="theme-color" content="{{.ThemeColor}}">
{{end}}<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
{{if .Image}}<meta property="og:image" content="{{.Image}}">
{{end}}<meta property="og:url" content="{{.URL}}">
<meta property="og:type" content="{{.Type}}">
<meta property="og:site_name" content="{{.SiteName}}">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="{{.Title}}">
<meta name="twitter:description" content="{{.Description}}">
{{if .Image}}<meta name="twitter:image" content="{{.Image}}">
{{end}}</head>
<body>
<div id="root"></div>
</body>
</html>
`

// MetadataRenderer emits the minimal HTML document served to automated
// clients. No application logic runs for them; the body is a single empty
// mount element.
type MetadataRenderer struct {
	tmpl *template.Template
}

// NewMetadataRenderer creates a new metadata renderer
func NewMetadataRenderer() *MetadataRenderer {
	return &MetadataRenderer{
		tmpl: template.Must(template.New("metadata").Parse(metadataDocument)),
	}
}

// Render writes the metadata document for a page.
func (r *MetadataRenderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render metadata document: %w", err)
	}
	return nil
}

// TenantPage builds page metadata for a storefront, or for a single item
// when item is non-nil.
func TenantPage(tenant *domain.Tenant, item *domain.Item, pageURL string) Page {
	page := Page{
		Title:       tenant.Name,
		Description: tenant.Description,
		Image:       tenant.Theme.LogoURL,
		URL:         pageURL,
		Type:        "website",
		SiteName:    tenant.Name,
		ThemeColor:  tenant.Theme.PrimaryColor,
	}

	if item != nil {
		page.Title = item.Name + " | " + tenant.Name
		page.Type = "product"
		if item.Description != "" {
			page.Description = item.Description
		}
		if len(item.Images) > 0 {
			page.Image = item.Images[0]
		}
	}

	if page.Description == "" {
		page.Description = defaultDescription
	}

	return page
}
