package conversation

import (
	"strings"

	"busimap/models"
)

// Entity confidence is fixed per type: keyword-derived business types are
// 0.8, caller-supplied locations are exact, price mentions are coarse.
const (
	businessTypeConfidence = 0.8
	locationConfidence     = 1.0
	priceRangeConfidence   = 0.7
)

// PriceMentioned is the sentinel value carried by price_range entities. The
// extractor only records that a price was talked about, not a numeric range.
const PriceMentioned = "mentioned"

// ExtractEntities pulls business-type, location and price-range entities out
// of an utterance. Business types come from per-language keyword maps, one
// entity per matched canonical type. A location entity is emitted only when
// the caller supplied coordinates, carried verbatim.
func ExtractEntities(utterance, lang string, location *models.UserLocation) []models.Entity {
	lowered := strings.ToLower(utterance)
	lang = langOrDefault(lang)

	entities := []models.Entity{}

	for _, businessType := range canonicalBusinessTypes {
		for _, keyword := range businessTypeKeywords[lang][businessType] {
			if strings.Contains(lowered, keyword) {
				entities = append(entities, models.Entity{
					Type:       models.EntityBusinessType,
					Value:      businessType,
					Confidence: businessTypeConfidence,
					Language:   lang,
				})
				break
			}
		}
	}

	if location != nil {
		entities = append(entities, models.Entity{
			Type:       models.EntityLocation,
			Location:   &models.UserLocation{Latitude: location.Latitude, Longitude: location.Longitude, Address: location.Address},
			Confidence: locationConfidence,
		})
	}

	for _, indicator := range priceIndicators[lang] {
		if strings.Contains(lowered, indicator) {
			entities = append(entities, models.Entity{
				Type:       models.EntityPriceRange,
				Value:      PriceMentioned,
				Confidence: priceRangeConfidence,
			})
			break
		}
	}

	return entities
}
