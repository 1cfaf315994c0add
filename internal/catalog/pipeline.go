// Package catalog filters, reshapes and paginates an upstream product snapshot.
//
// Stages run in a fixed order: completeness gate, release date range, brand,
// shaping, pagination. The date, brand and pagination stages only run when
// enabled in the StageSet. Surviving records keep their upstream order.
package catalog

import "github.com/rogerio-castellano/electronics-catalog-proxy/internal/models"

// Run validates params and applies the pipeline to records.
func Run(records []models.UpstreamRecord, params QueryParams, stages StageSet) ([]models.OutputRecord, error) {
	f, err := Parse(params, stages)
	if err != nil {
		return nil, err
	}
	return Apply(records, f), nil
}

// Apply runs the pipeline with an already validated filter.
// The result is never nil.
func Apply(records []models.UpstreamRecord, f Filter) []models.OutputRecord {
	shaped := make([]models.OutputRecord, 0, len(records))
	for _, u := range records {
		if f.matches(u) {
			shaped = append(shaped, shape(u))
		}
	}
	return paginate(shaped, f.Offset, f.Limit)
}

func paginate[T any](items []T, offset, limit *int) []T {
	start := 0
	if offset != nil {
		start = clamp(*offset, 0, len(items))
	}

	end := len(items)
	if limit != nil && *limit > 0 && *limit < end-start {
		end = start + *limit
	}

	return items[start:end]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
