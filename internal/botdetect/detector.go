// Package botdetect decides whether a request comes from a known crawler.
package botdetect

import "strings"

// Detector matches user-agent strings against known crawler signatures.
type Detector struct {
	signatures []string
}

// Social preview bots and general search crawlers. Matching is
// case-insensitive substring, the way the platforms document it.
var defaultSignatures = []string{
	"facebookexternalhit",
	"facebot",
	"twitterbot",
	"googlebot",
	"bingbot",
	"slackbot",
	"linkedinbot",
	"whatsapp",
	"telegrambot",
	"discordbot",
	"pinterest",
	"applebot",
	"duckduckbot",
	"yandexbot",
	"baiduspider",
	"zalo",
	"skypeuripreview",
}

// New creates a Detector with the default signature set.
func New() *Detector {
	return &Detector{signatures: defaultSignatures}
}

// NewWithSignatures creates a Detector with a custom signature set.
// Signatures are matched case-insensitively.
func NewWithSignatures(signatures []string) *Detector {
	lowered := make([]string, 0, len(signatures))
	for _, s := range signatures {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			lowered = append(lowered, s)
		}
	}
	return &Detector{signatures: lowered}
}

// IsCrawler reports whether the user-agent belongs to a known crawler.
func (d *Detector) IsCrawler(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	ua := strings.ToLower(userAgent)
	for _, sig := range d.signatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}
	return false
}
