package models

import "time"

// Valid post categories for the storefront feed.
const (
	CategoryAnnouncement = "announcement"
	CategoryProduct      = "product"
	CategorySale         = "sale"
	CategoryReview       = "review"
	CategoryTips         = "tips"
	CategoryDeal         = "deal"
)

// ValidCategories lists every category a post may carry.
var ValidCategories = []string{
	CategoryAnnouncement,
	CategoryProduct,
	CategorySale,
	CategoryReview,
	CategoryTips,
	CategoryDeal,
}

// IsValidCategory reports whether category is one of the fixed set.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if category == c {
			return true
		}
	}
	return false
}

// Post represents a storefront post authored by a user.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	Featured  bool      `json:"featured"`
}
