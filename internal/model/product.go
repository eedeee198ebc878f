package model

// Source identifies the catalog a record came from.
type Source string

const (
	SourceA Source = "A" // boutique retailer
	SourceB Source = "B" // large retailer
)

// Sources lists every source in presentation order.
var Sources = []Source{SourceA, SourceB}

func (s Source) Valid() bool {
	return s == SourceA || s == SourceB
}

// Canonical column names shared by every source after normalization.
const (
	ColProductID     = "product_id"
	ColProductName   = "product_name"
	ColBrandName     = "brand_name"
	ColPrice         = "price"
	ColRating        = "rating"
	ColReviews       = "reviews"
	ColSuitableType  = "suitable_type"
	ColIngredients   = "ingredients"
	ColSentiment     = "sentiment"
	ColFirstSentence = "first_sentence"
	ColImageURL      = "image_url"
)

// ProductRecord is one normalized, coerced catalog row.
type ProductRecord struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	BrandName   string   `json:"brand_name"`
	Price       *float64 `json:"price"`
	Rating      *float64 `json:"rating"`
	Reviews     *int64   `json:"reviews"`
	Source      Source   `json:"source"`

	// Showcase attributes; list columns are unwrapped once at load.
	SuitableType  []string `json:"suitable_type,omitempty"`
	Ingredients   []string `json:"ingredients,omitempty"`
	Sentiment     string   `json:"sentiment,omitempty"`
	FirstSentence string   `json:"first_sentence,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`

	// Extra holds unmapped source columns untouched.
	Extra map[string]string `json:"-"`
}

// Table is the in-memory working table.
type Table struct {
	Records []ProductRecord
}

func (t Table) Len() int { return len(t.Records) }

// Filter returns a new table holding the records keep accepts, in order.
func (t Table) Filter(keep func(ProductRecord) bool) Table {
	out := make([]ProductRecord, 0, len(t.Records))
	for _, r := range t.Records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return Table{Records: out}
}

func (t Table) BySource(s Source) Table {
	return t.Filter(func(r ProductRecord) bool { return r.Source == s })
}

func (t Table) ByBrand(brand string) Table {
	return t.Filter(func(r ProductRecord) bool { return r.BrandName == brand })
}

// Float returns a pointer to v, for building nullable values.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for building nullable values.
func Int(v int64) *int64 { return &v }
