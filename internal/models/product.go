package models

// UpstreamRecord is a product as returned by the upstream catalog API.
// Values are kept untyped because the upstream gives no schema guarantees;
// numbers decode as json.Number so they are written back unchanged.
type UpstreamRecord struct {
	ProductID     any `json:"productId"`
	ProductName   any `json:"productName"`
	BrandName     any `json:"brandName"`
	Category      any `json:"category"`
	Description   any `json:"description"`
	Price         any `json:"price"`
	Currency      any `json:"currency"`
	Processor     any `json:"processor"`
	Memory        any `json:"memory"`
	ReleaseDate   any `json:"releaseDate"`
	AverageRating any `json:"averageRating"`
	RatingCount   any `json:"ratingCount"`
}

// UpstreamRecordFromMap picks the record fields out of a decoded JSON object.
// Keys are matched exactly, so "productid" does not fill ProductID.
func UpstreamRecordFromMap(m map[string]any) UpstreamRecord {
	return UpstreamRecord{
		ProductID:     m["productId"],
		ProductName:   m["productName"],
		BrandName:     m["brandName"],
		Category:      m["category"],
		Description:   m["description"],
		Price:         m["price"],
		Currency:      m["currency"],
		Processor:     m["processor"],
		Memory:        m["memory"],
		ReleaseDate:   m["releaseDate"],
		AverageRating: m["averageRating"],
		RatingCount:   m["ratingCount"],
	}
}

// Fields returns the record values in OutputRecord order.
func (u UpstreamRecord) Fields() []any {
	return []any{
		u.ProductID,
		u.ProductName,
		u.BrandName,
		u.Category,
		u.Description,
		u.Price,
		u.Currency,
		u.Processor,
		u.Memory,
		u.ReleaseDate,
		u.AverageRating,
		u.RatingCount,
	}
}

// OutputRecord is the snake_case projection served to clients.
// A nil field is encoded as null.
type OutputRecord struct {
	ProductID       any `json:"product_id"`
	ProductName     any `json:"product_name"`
	BrandName       any `json:"brand_name"`
	CategoryName    any `json:"category_name"`
	DescriptionText any `json:"description_text"`
	Price           any `json:"price"`
	Currency        any `json:"currency"`
	Processor       any `json:"processor"`
	Memory          any `json:"memory"`
	ReleaseDate     any `json:"release_date"`
	AverageRating   any `json:"average_rating"`
	RatingCount     any `json:"rating_count"`
}
