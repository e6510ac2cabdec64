package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/gophstore/internal/models"
)

func (c *Cli) runCategories(ctx context.Context) error {
	categories, err := c.apiClient.FetchCategories(ctx)
	if err != nil {
		// Листинг деградирует до пустого, а не падает
		c.io.Printf("⚠️  Failed to load categories: %v\n", err)
		categories = nil
	}

	c.io.Println("=== Categories ===")
	c.io.Println()

	if len(categories) == 0 {
		c.io.Println("No categories found.")
		return nil
	}

	for _, cat := range categories {
		c.printCategory(cat)
	}

	return nil
}

func (c *Cli) runCategory(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gophstore category <id|slug>")
	}

	var (
		category *models.Category
		err      error
	)

	// Числовой аргумент трактуется как id, иначе как slug
	if id, convErr := strconv.Atoi(args[0]); convErr == nil {
		category, err = c.apiClient.FetchCategoryByID(ctx, id)
	} else {
		category, err = c.apiClient.FetchCategoryBySlug(ctx, args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to load category %s: %w", args[0], err)
	}

	c.printCategory(*category)
	return nil
}

func (c *Cli) printCategory(cat models.Category) {
	if cat.Slug != "" {
		c.io.Printf("  [%d] %s (slug: %s)\n", cat.ID, cat.Name, cat.Slug)
	} else {
		c.io.Printf("  [%d] %s\n", cat.ID, cat.Name)
	}
}
