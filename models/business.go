package models

// Business is the stored business document backing the search collaborator.
type Business struct {
	ID          string   `bson:"businessId" json:"business_id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Category    string   `bson:"category" json:"category"`
	Address     string   `bson:"address" json:"address"`
	Province    string   `bson:"province,omitempty" json:"province,omitempty"`
	District    string   `bson:"district,omitempty" json:"district,omitempty"`
	Phone       string   `bson:"phone" json:"phone"`
	Email       string   `bson:"email,omitempty" json:"email,omitempty"`
	PriceRange  string   `bson:"priceRange,omitempty" json:"price_range,omitempty"`
	Amenities   []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Latitude    float64  `bson:"latitude" json:"latitude"`
	Longitude   float64  `bson:"longitude" json:"longitude"`
	Rating      float64  `bson:"rating" json:"rating"`
	Reviews     int      `bson:"reviews" json:"reviews"`
	ViewCount   int      `bson:"viewCount" json:"view_count"`
	Verified    bool     `bson:"verified" json:"verified"`
}

// SearchQuery is the structured request handed to the search collaborator.
type SearchQuery struct {
	Text     string        `json:"text"`
	Language string        `json:"language"`
	Location *UserLocation `json:"location,omitempty"`
	Category string        `json:"category,omitempty"`
	SortBy   string        `json:"sort_by"` // "relevance", "rating" or "name"
	Page     int           `json:"page"`
}

// BusinessResult is one raw hit returned by the search collaborator.
type BusinessResult struct {
	Business `bson:",inline"`
	Reason   string `bson:"-" json:"recommendation_reason,omitempty"`
}

// SearchMetadata is compact per-query metadata surfaced with results.
type SearchMetadata struct {
	TotalFound  int      `json:"total_found,omitempty"`
	Query       string   `json:"query,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// SearchResultSet is the full collaborator response for one query.
type SearchResultSet struct {
	Results    []BusinessResult `json:"results"`
	TotalFound int              `json:"total_found"`
	Metadata   SearchMetadata   `json:"metadata"`
}

// BusinessSummary is the compact conversational projection of one result.
type BusinessSummary struct {
	ID         string  `json:"business_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Address    string  `json:"address"`
	District   string  `json:"district,omitempty"`
	Phone      string  `json:"phone"`
	Rating     float64 `json:"rating"`
	PriceRange string  `json:"price_range,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Reason     string  `json:"reason,omitempty"`
}
