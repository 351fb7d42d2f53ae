package domain

// CategorySummary is a single category row returned by the category
// search endpoint.
type CategorySummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductSummary is a single product row returned by the product
// search endpoint.
type ProductSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Brand string `json:"brand"`
}

// ResultSet holds the combined outcome of one fetch cycle. Both slices
// are replaced as a unit; there is no incremental merge.
type ResultSet struct {
	Categories []CategorySummary
	Products   []ProductSummary
}

// IsEmpty reports whether the set contains no results at all.
func (rs ResultSet) IsEmpty() bool {
	return len(rs.Categories) == 0 && len(rs.Products) == 0
}

// Len returns the total number of rows across both groups.
func (rs ResultSet) Len() int {
	return len(rs.Categories) + len(rs.Products)
}
