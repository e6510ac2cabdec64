package api

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// ProductResponse представляет товар, как его возвращает API.
// Поле images приходит в двух исторических форматах (массив строк либо
// JSON-массив, закодированный строкой), поэтому оставлено сырым,
// нормализация выполняется на границе клиента.
type ProductResponse struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Price       int              `json:"price"`
	Description string           `json:"description"`
	Category    CategoryResponse `json:"category"`
	Images      json.RawMessage  `json:"images"`
}

// CategoryResponse представляет категорию каталога
type CategoryResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Slug      string `json:"slug,omitempty"`
	CreatedAt string `json:"creationAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// UploadResponse представляет ответ на загрузку файла
type UploadResponse struct {
	OriginalName string `json:"originalname"`
	Filename     string `json:"filename"`
	Location     string `json:"location"` // публичный URL загруженного файла
}

// ProductFilters описывает query-параметры листинга товаров.
// Нулевые значения не кодируются.
type ProductFilters struct {
	Title      string
	PriceMin   int
	PriceMax   int
	CategoryID int
	Offset     int
	Limit      int
}

// Encode сериализует фильтры в query string (пустая строка, если фильтров нет)
func (f *ProductFilters) Encode() string {
	if f == nil {
		return ""
	}

	params := url.Values{}
	if f.Title != "" {
		params.Set("title", f.Title)
	}
	if f.PriceMin > 0 {
		params.Set("price_min", strconv.Itoa(f.PriceMin))
	}
	if f.PriceMax > 0 {
		params.Set("price_max", strconv.Itoa(f.PriceMax))
	}
	if f.CategoryID > 0 {
		params.Set("categoryId", strconv.Itoa(f.CategoryID))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}

	return params.Encode()
}
