package internal

import (
	"net/http"
	"strconv"
	"strings"
)

// inventoryParams holds the query parameters of the inventory endpoints
type inventoryParams struct {
	page   int
	office string
	q      string
}

// parseInventoryParams parses page, office, and q from the request.
// Defaults: page=1; non-positive or unparsable pages fall back to 1.
// The search text is trimmed here so every caller shares the same
// blank-means-no-filter behavior.
func parseInventoryParams(r *http.Request) inventoryParams {
	values := r.URL.Query()

	page := 1
	if s := strings.TrimSpace(values.Get("page")); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			page = v
		}
	}

	return inventoryParams{
		page:   page,
		office: values.Get("office"),
		q:      strings.TrimSpace(values.Get("q")),
	}
}
