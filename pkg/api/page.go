package api

// Page is the paginated list envelope the API uses for month-card
// collections: a total count, links to the neighbouring pages and the
// records of the current page.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
