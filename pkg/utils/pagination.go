package utils

import (
	"net/url"
	"strconv"
)

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// PageLink rebuilds the request URL with its page parameter set to page.
// Page 1 drops the parameter, pages below 1 return nil (no link).
func PageLink(u *url.URL, page int) *string {
	if page < 1 {
		return nil
	}

	linkURL := *u
	query := linkURL.Query()
	if page == 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}
	linkURL.RawQuery = query.Encode()

	link := linkURL.String()
	return &link
}
