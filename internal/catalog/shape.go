package catalog

import (
	"encoding/json"
	"math"

	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/models"
)

// truthy treats null, "", false and numeric zero as missing.
// A product priced or rated at 0 is therefore dropped by the completeness gate.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	default:
		return true
	}
}

func orNull(v any) any {
	if !truthy(v) {
		return nil
	}
	return v
}

func shape(u models.UpstreamRecord) models.OutputRecord {
	return models.OutputRecord{
		ProductID:       orNull(u.ProductID),
		ProductName:     orNull(u.ProductName),
		BrandName:       orNull(u.BrandName),
		CategoryName:    orNull(u.Category),
		DescriptionText: orNull(u.Description),
		Price:           orNull(u.Price),
		Currency:        orNull(u.Currency),
		Processor:       orNull(u.Processor),
		Memory:          orNull(u.Memory),
		ReleaseDate:     orNull(u.ReleaseDate),
		AverageRating:   orNull(u.AverageRating),
		RatingCount:     orNull(u.RatingCount),
	}
}
