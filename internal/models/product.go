package models

// Product представляет товар каталога после нормализации на границе клиента
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Price       int      `json:"price"` // цена за единицу, в целых единицах валюты
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Images      []string `json:"images"` // канонизированные URL
}

// Category представляет категорию каталога
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Slug  string `json:"slug,omitempty"`
}
