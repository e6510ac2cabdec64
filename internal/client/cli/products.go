package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/gophstore/internal/models"
	"github.com/iudanet/gophstore/pkg/api"
)

func (c *Cli) runProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	title := fs.String("title", "", "Filter by title")
	categoryID := fs.Int("category", 0, "Filter by category id")
	priceMin := fs.Int("price-min", 0, "Minimum price")
	priceMax := fs.Int("price-max", 0, "Maximum price")
	limit := fs.Int("limit", 0, "Page size")
	offset := fs.Int("offset", 0, "Page offset")

	if err := fs.Parse(args); err != nil {
		return err
	}

	filters := &api.ProductFilters{
		Title:      *title,
		PriceMin:   *priceMin,
		PriceMax:   *priceMax,
		CategoryID: *categoryID,
		Offset:     *offset,
		Limit:      *limit,
	}

	products, err := c.apiClient.FetchProducts(ctx, filters)
	if err != nil {
		// Листинг деградирует до пустого, а не падает
		c.io.Printf("⚠️  Failed to load products: %v\n", err)
		products = nil
	}

	c.io.Println("=== Products ===")
	c.io.Println()

	if len(products) == 0 {
		c.io.Println("No products found.")
		return nil
	}

	for _, p := range products {
		c.printProductLine(p)
	}
	c.io.Println()
	c.io.Printf("%d product(s)\n", len(products))

	return nil
}

func (c *Cli) runProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gophstore product <id>")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}

	product, err := c.apiClient.FetchProductByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load product %d: %w", id, err)
	}

	c.io.Printf("=== %s ===\n", product.Title)
	c.io.Println()
	c.io.Printf("ID:       %d\n", product.ID)
	c.io.Printf("Price:    %d\n", product.Price)
	c.io.Printf("Category: %s\n", product.Category.Name)
	if len(product.Images) > 0 {
		c.io.Printf("Images:   %s\n", strings.Join(product.Images, ", "))
	}
	c.io.Println()
	c.io.Println(product.Description)

	related, err := c.apiClient.FetchRelatedProducts(ctx, product.Title, product.ID)
	if err == nil && len(related) > 0 {
		c.io.Println()
		c.io.Println("Related products:")
		for _, p := range related {
			c.printProductLine(p)
		}
	}

	return nil
}

func (c *Cli) printProductLine(p models.Product) {
	c.io.Printf("  [%d] %s  price: %d  (%s)\n", p.ID, p.Title, p.Price, p.Category.Name)
}
