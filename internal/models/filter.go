package models

// ProductFilter is the normalized set of search criteria shared by every
// entry point. Empty strings and nil pointers mean "no filter".
type ProductFilter struct {
	Keyword     string
	Category    string
	SubCategory string
	MinPrice    *float64
	MaxPrice    *float64
	InStock     *bool
}

// IsEmpty reports whether no criterion is set.
func (f ProductFilter) IsEmpty() bool {
	return f.Keyword == "" && f.Category == "" && f.SubCategory == "" &&
		f.MinPrice == nil && f.MaxPrice == nil && f.InStock == nil
}
