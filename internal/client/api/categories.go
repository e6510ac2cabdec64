package api

import (
	"context"
	"fmt"

	"github.com/iudanet/gophstore/internal/models"
	"github.com/iudanet/gophstore/pkg/api"
)

// FetchCategories получает список категорий каталога
func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var raw []api.CategoryResponse
	if err := c.doRequest(ctx, "GET", "/categories", "", nil, &raw); err != nil {
		return nil, fmt.Errorf("fetch categories request failed: %w", err)
	}

	categories := make([]models.Category, 0, len(raw))
	for _, r := range raw {
		categories = append(categories, models.Category{
			ID:    r.ID,
			Name:  r.Name,
			Image: r.Image,
			Slug:  r.Slug,
		})
	}
	return categories, nil
}

// FetchCategoryByID получает категорию по идентификатору
func (c *Client) FetchCategoryByID(ctx context.Context, id int) (*models.Category, error) {
	var raw api.CategoryResponse
	url := fmt.Sprintf("/categories/%d", id)
	if err := c.doRequest(ctx, "GET", url, "", nil, &raw); err != nil {
		return nil, fmt.Errorf("fetch category request failed: %w", err)
	}

	return &models.Category{ID: raw.ID, Name: raw.Name, Image: raw.Image, Slug: raw.Slug}, nil
}

// FetchCategoryBySlug получает категорию по slug
func (c *Client) FetchCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var raw api.CategoryResponse
	url := "/categories/slug/" + slug
	if err := c.doRequest(ctx, "GET", url, "", nil, &raw); err != nil {
		return nil, fmt.Errorf("fetch category request failed: %w", err)
	}

	return &models.Category{ID: raw.ID, Name: raw.Name, Image: raw.Image, Slug: raw.Slug}, nil
}
