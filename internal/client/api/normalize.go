package api

import (
	"encoding/json"
	"path"
	"strings"

	"github.com/iudanet/gophstore/internal/models"
	"github.com/iudanet/gophstore/pkg/api"
)

// imageHostAllowlist перечисляет хосты, URL которых проходят без перезаписи.
// Все остальное канонизируется в https://i.imgur.com/<file>
var imageHostAllowlist = []string{
	"https://i.imgur.com/",
	"https://api.escuelajs.co/",
	"https://img.daisyui.com/",
}

// placeholderImage маркер seed-данных каталога, такие товары отбрасываются
const placeholderImage = "https://i.imgur.com/any"

// normalizeProduct переводит сырой ответ API в доменную модель.
// Вся нормализация third-party ответов сосредоточена здесь, чтобы
// внутренняя модель не несла причуды удаленного API.
func normalizeProduct(p api.ProductResponse) models.Product {
	return models.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category: models.Category{
			ID:    p.Category.ID,
			Name:  p.Category.Name,
			Image: p.Category.Image,
			Slug:  p.Category.Slug,
		},
		Images: parseImageURLs(p.Images),
	}
}

// parseImageURLs разбирает поле images, которое приходит либо массивом строк,
// либо JSON-массивом, закодированным строкой. Неразборчивые данные дают
// пустой список, а не ошибку.
func parseImageURLs(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var urls []string
	if err := json.Unmarshal(raw, &urls); err != nil {
		// Второй формат: строка, внутри которой JSON-массив
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil
		}
		if err := json.Unmarshal([]byte(encoded), &urls); err != nil {
			return nil
		}
	}

	canonical := make([]string, 0, len(urls))
	for _, u := range urls {
		canonical = append(canonical, canonicalImageURL(u))
	}
	return canonical
}

// canonicalImageURL чистит URL от лишних кавычек и переписывает его на
// разрешенный хост, если он оттуда не пришел
func canonicalImageURL(u string) string {
	u = strings.TrimSpace(strings.Trim(strings.TrimSpace(u), `"`))

	for _, host := range imageHostAllowlist {
		if strings.HasPrefix(u, host) {
			return u
		}
	}

	fileName := path.Base(u)
	if fileName == "." || fileName == "/" || fileName == "" {
		fileName = "default.jpeg"
	}
	return "https://i.imgur.com/" + fileName
}

// validTitle отсекает заглушки каталога: слишком короткие заголовки
// и дефолтный seed-заголовок
func validTitle(title string) bool {
	return len(strings.TrimSpace(title)) >= 5 && title != "New Product"
}

// listable решает, показывать ли товар в листингах.
// Детальная выборка по ID эти проверки не применяет.
func listable(p models.Product) bool {
	if !validTitle(p.Title) {
		return false
	}
	if len(p.Images) == 0 {
		return false
	}
	return !strings.Contains(p.Images[0], placeholderImage)
}
