package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/catalog"
)

// queryParams reads only the query parameters an endpoint recognizes for its
// stages. Everything else in the query string is ignored.
func queryParams(r *http.Request, stages catalog.StageSet) catalog.QueryParams {
	q := r.URL.Query()
	var p catalog.QueryParams

	if stages.Has(catalog.DateRange) {
		p.ReleaseDateStart = q.Get("release_date_start")
		p.ReleaseDateEnd = q.Get("release_date_end")
	}
	if stages.Has(catalog.Brand) {
		p.Brands = q.Get("brands")
	}
	if stages.Has(catalog.Pagination) {
		p.PageSize = q.Get("page_size")
		p.PageNumber = q.Get("page_number")
	}

	return p
}
