package application

import "strings"

// Client classifies the calling client for rendering purposes.
type Client int

const (
	// Interactive is a human-driven browser; it receives the SPA shell.
	Interactive Client = iota
	// Automated is a crawler or link-preview fetcher; it receives the
	// metadata document.
	Automated
)

// crawlerTokens is the fixed set of user-agent fragments treated as
// automated clients. Matching is case-insensitive substring search; this is
// purely a rendering-mode switch, not an allow-list or rate-limit boundary.
var crawlerTokens = []string{
	"bot",
	"crawl",
	"spider",
	"slurp",
	"facebookexternalhit",
	"facebookcatalog",
	"twitterbot",
	"whatsapp",
	"telegrambot",
	"linkedinbot",
	"discordbot",
	"pinterest",
	"skypeuripreview",
	"embedly",
	"quora link preview",
	"vkshare",
}

// Classify maps a User-Agent header to a client class. A missing header
// fails open to the human path.
func Classify(userAgent string) Client {
	if userAgent == "" {
		return Interactive
	}
	ua := strings.ToLower(userAgent)
	for _, token := range crawlerTokens {
		if strings.Contains(ua, token) {
			return Automated
		}
	}
	return Interactive
}
