package entities

import "time"

// Product represents a digital product in the catalog
type Product struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MainImageURL string    `json:"mainImageUrl"`
	Price        float64   `json:"price"`
	Rating       float64   `json:"rating"`
	TypeID       uint      `json:"typeId"`
	Hidden       bool      `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProductFilter narrows catalog listings
type ProductFilter struct {
	TypeID        *uint
	MinPrice      *float64
	MaxPrice      *float64
	Search        string
	IncludeHidden bool
}

// CreateProductInput represents input for creating a product
type CreateProductInput struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Description  string  `json:"description" binding:"required,max=500"`
	MainImageURL string  `json:"mainImageUrl" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	TypeID       uint    `json:"typeId" binding:"required"`
}

// ProductPatch enumerates the optional fields of a partial update. Each nil
// pointer leaves the stored value untouched; no SQL is assembled at runtime
// from user-influenced column names.
type ProductPatch struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	MainImageURL *string  `json:"mainImageUrl"`
	Price        *float64 `json:"price"`
	TypeID       *uint    `json:"typeId"`
	Hidden       *bool    `json:"hidden"`
}

// IsEmpty reports whether the patch changes nothing
func (p *ProductPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.MainImageURL == nil &&
		p.Price == nil && p.TypeID == nil && p.Hidden == nil
}
