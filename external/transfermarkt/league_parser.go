package transfermarkt

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const teamPathMarker = "/startseite/verein/"

// ExtractTeamURLs returns the absolute, de-duplicated team page links of a
// league listing page in document order. A page without the listing table
// yields an empty slice.
func ExtractTeamURLs(doc *goquery.Document, base string) []string {
	out := make([]string, 0, 24)
	if doc == nil {
		return out
	}

	baseURL, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		baseURL = nil
	}

	seen := make(map[string]struct{}, 24)
	doc.Find("table.items").Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		link, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		if baseURL != nil {
			link = baseURL.ResolveReference(link)
		}
		if !link.IsAbs() || !strings.Contains(link.Path, teamPathMarker) {
			return
		}
		link.RawQuery = ""
		link.Fragment = ""

		key := link.String()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, key)
	})

	return out
}
