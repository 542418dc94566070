package receipt

import (
	"strings"

	"github.com/atlasdev/atlas/internal/model"
)

// Classification identifies the merchant behind a receipt and where its
// expense belongs.
type Classification struct {
	Establishment *string
	Category      string
	Subcategory   string
	CategoryType  string
}

// Classify scans text for the longest known merchant keyword and returns its
// classification. Text with no known keyword lands in the outros/outros
// bucket, tagged discretionary, with no establishment name.
func Classify(text string) Classification {
	lower := strings.ToLower(text)

	for _, keyword := range keywordsByLength {
		if strings.Contains(lower, keyword) {
			info := merchantKeywords[keyword]
			name := info.Name
			return Classification{
				Establishment: &name,
				Category:      info.Category,
				Subcategory:   info.Subcategory,
				CategoryType:  info.Type,
			}
		}
	}

	return Classification{
		Category:     model.CategoryOther,
		Subcategory:  model.CategoryOther,
		CategoryType: model.TypeDiscretionary,
	}
}
