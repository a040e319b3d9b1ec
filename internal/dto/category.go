package dto

import (
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Label  string              `json:"label" binding:"required"`
	Icon   string              `json:"icon"`
	Type   domain.CategoryType `json:"type" binding:"required,oneof=income expense transfer"`
	Color  string              `json:"color"`
	IsDebt bool                `json:"isDebt"`
	IsGoal bool                `json:"isGoal"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Type is immutable identity and cannot be changed after creation.
type UpdateCategoryRequest struct {
	Label  *string `json:"label"`
	Icon   *string `json:"icon"`
	Color  *string `json:"color"`
	IsDebt *bool   `json:"isDebt"`
	IsGoal *bool   `json:"isGoal"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryID"`
	Label      string              `json:"label"`
	Icon       string              `json:"icon"`
	Type       domain.CategoryType `json:"type"`
	Color      string              `json:"color"`
	IsDebt     bool                `json:"isDebt"`
	IsGoal     bool                `json:"isGoal"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Label:      c.Label,
		Icon:       c.Icon,
		Type:       c.Type,
		Color:      c.Color,
		IsDebt:     c.IsDebt,
		IsGoal:     c.IsGoal,
	}
}

// ToListCategoryResponse converts a slice of domain.Category.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
