package receipt

import "github.com/atlasdev/atlas/internal/model"

// Parse runs the amount, date and merchant extractors independently over one
// blob of document text and assembles the result. Extractors that find
// nothing leave their field nil; Parse never fails.
func Parse(text string) model.ParsedReceipt {
	classification := Classify(text)

	return model.ParsedReceipt{
		Amount:        ExtractAmount(text),
		Date:          ExtractDate(text),
		Establishment: classification.Establishment,
		Category:      classification.Category,
		Subcategory:   classification.Subcategory,
		CategoryType:  classification.CategoryType,
		Description:   classification.Establishment,
	}
}
