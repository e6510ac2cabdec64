package api

import (
	"context"
	"fmt"

	"github.com/iudanet/gophstore/internal/models"
	"github.com/iudanet/gophstore/pkg/api"
)

// FetchProducts получает листинг товаров с опциональными фильтрами.
// Товары нормализуются и фильтруются от seed-заглушек каталога.
func (c *Client) FetchProducts(ctx context.Context, filters *api.ProductFilters) ([]models.Product, error) {
	url := "/products"
	if qs := filters.Encode(); qs != "" {
		url += "?" + qs
	}

	var raw []api.ProductResponse
	if err := c.doRequest(ctx, "GET", url, "", nil, &raw); err != nil {
		return nil, fmt.Errorf("fetch products request failed: %w", err)
	}

	products := make([]models.Product, 0, len(raw))
	for _, r := range raw {
		p := normalizeProduct(r)
		if listable(p) {
			products = append(products, p)
		}
	}
	return products, nil
}

// FetchProductByID получает один товар. В отличие от листингов ошибка
// здесь распространяется: детальный просмотр обязан показать ошибку.
func (c *Client) FetchProductByID(ctx context.Context, id int) (*models.Product, error) {
	var raw api.ProductResponse
	url := fmt.Sprintf("/products/%d", id)
	if err := c.doRequest(ctx, "GET", url, "", nil, &raw); err != nil {
		return nil, fmt.Errorf("fetch product request failed: %w", err)
	}

	p := normalizeProduct(raw)
	return &p, nil
}

// FetchRelatedProducts ищет товары по заголовку, исключая сам товар
func (c *Client) FetchRelatedProducts(ctx context.Context, title string, excludeID int) ([]models.Product, error) {
	products, err := c.FetchProducts(ctx, &api.ProductFilters{Title: title})
	if err != nil {
		return nil, err
	}

	related := products[:0]
	for _, p := range products {
		if p.ID != excludeID {
			related = append(related, p)
		}
	}
	return related, nil
}
