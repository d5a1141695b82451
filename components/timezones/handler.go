package timezones

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Option is one JSON search result, shaped like a select choice.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Handler returns a GET/HEAD endpoint serving timezone options as JSON.
// Query parameters: query filters by substring, limit caps the result count.
// Useful behind autocomplete-style timezone selects.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		zones, err := DefaultZones()
		if err != nil {
			http.Error(w, "timezone data unavailable", http.StatusInternalServerError)
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		results := Search(zones, r.URL.Query().Get("query"), limit)
		options := make([]Option, 0, len(results))
		for _, zone := range results {
			options = append(options, Option{Value: zone, Label: zone})
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Method == http.MethodHead {
			return
		}
		if err := json.NewEncoder(w).Encode(options); err != nil {
			http.Error(w, "encode response", http.StatusInternalServerError)
		}
	})
}
