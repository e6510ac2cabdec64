package models

// CartLine представляет одну позицию корзины: товар и его количество.
// Quantity всегда положительно: позиция с нулевым количеством удаляется,
// а не хранится. MaxStock равный нулю означает "остаток неизвестен".
type CartLine struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
	Category  string `json:"category,omitempty"`
	MaxStock  int    `json:"max_stock,omitempty"`
}

// Subtotal возвращает стоимость позиции
func (l CartLine) Subtotal() int {
	return l.UnitPrice * l.Quantity
}
