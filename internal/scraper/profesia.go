package scraper

import (
	"fmt"
	"net/url"
)

const (
	BaseURL   = "https://www.profesia.sk"
	searchURL = BaseURL + "/praca/?search_anywhere="
)

// SearchURL builds the result-page URL for one keyword.
func SearchURL(keyword string) string {
	return fmt.Sprintf("%s%s", searchURL, url.QueryEscape(keyword))
}
