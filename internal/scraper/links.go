package scraper

import (
	"net/url"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// AbsoluteURL resolves href against base. Result pages mix absolute and
// site-relative anchors.
func AbsoluteURL(base, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

// StripQuery removes query parameters and fragments. Boards attach
// tracking params (?refId=..., ?trackingId=...) that make the same
// listing look like different URLs during dedup.
func StripQuery(raw string) string {
	if idx := strings.IndexAny(raw, "?#"); idx != -1 {
		return raw[:idx]
	}
	return raw
}

// LinkSet accumulates unique listing URLs in discovery order.
type LinkSet struct {
	seen mapset.Set[string]
	urls []string
}

func NewLinkSet() *LinkSet {
	return &LinkSet{seen: mapset.NewThreadUnsafeSet[string]()}
}

// Add records url unless it is empty or already present. Reports
// whether the set grew.
func (ls *LinkSet) Add(url string) bool {
	if url == "" || !ls.seen.Add(url) {
		return false
	}
	ls.urls = append(ls.urls, url)
	return true
}

func (ls *LinkSet) Len() int {
	return len(ls.urls)
}

// URLs returns the collected links in discovery order.
func (ls *LinkSet) URLs() []string {
	return ls.urls
}
