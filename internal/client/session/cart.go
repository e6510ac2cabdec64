package session

import (
	"context"
	"fmt"

	"github.com/iudanet/gophstore/internal/models"
)

// AddToCart добавляет товар в активную корзину. Если позиция с таким же
// product id уже есть, увеличивается ее количество; новая позиция
// с qty <= 0 получает количество 1. Количество не превышает MaxStock,
// когда остаток известен.
func (s *Store) AddToCart(ctx context.Context, line models.CartLine, qty int) error {
	if line.ProductID <= 0 {
		return fmt.Errorf("invalid product id: %d", line.ProductID)
	}
	if qty <= 0 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.cart {
		if s.cart[i].ProductID == line.ProductID {
			s.cart[i].Quantity = clampQuantity(s.cart[i].Quantity+qty, s.cart[i].MaxStock)
			found = true
			break
		}
	}

	if !found {
		line.Quantity = clampQuantity(qty, line.MaxStock)
		s.cart = append(s.cart, line)
	}

	return s.persistCartLocked(ctx)
}

// UpdateQuantity устанавливает количество позиции. qty <= 0 удаляет
// позицию целиком: неположительное количество не хранится.
func (s *Store) UpdateQuantity(ctx context.Context, productID, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		s.removeLocked(productID)
		return s.persistCartLocked(ctx)
	}

	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity = clampQuantity(qty, s.cart[i].MaxStock)
			return s.persistCartLocked(ctx)
		}
	}

	return fmt.Errorf("product %d is not in the cart", productID)
}

// RemoveFromCart удаляет позицию безусловно
func (s *Store) RemoveFromCart(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
	return s.persistCartLocked(ctx)
}

// ClearCart опустошает активную корзину и ее снимок в хранилище
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
	return s.persistCartLocked(ctx)
}

// Cart возвращает копию активной корзины
func (s *Store) Cart() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]models.CartLine, len(s.cart))
	copy(lines, s.cart)
	return lines
}

// CartTotal возвращает суммарную стоимость корзины
func (s *Store) CartTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, l := range s.cart {
		total += l.Subtotal()
	}
	return total
}

// CartItemCount возвращает суммарное количество единиц товара
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, l := range s.cart {
		count += l.Quantity
	}
	return count
}

// removeLocked удаляет позицию из активной корзины. Вызывается под мьютексом.
func (s *Store) removeLocked(productID int) {
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// persistCartLocked пишет снимок активной корзины под текущим владельцем.
// Вызывается под мьютексом: мутация и ее запись атомарны друг к другу.
func (s *Store) persistCartLocked(ctx context.Context) error {
	if err := s.storage.SaveCart(ctx, s.ownerID(), s.cart); err != nil {
		return s.failLocked(fmt.Errorf("failed to persist cart: %w", err))
	}
	return nil
}

// clampQuantity ограничивает количество известным остатком.
// maxStock == 0 означает "остаток неизвестен", без ограничения.
func clampQuantity(qty, maxStock int) int {
	if maxStock > 0 && qty > maxStock {
		return maxStock
	}
	return qty
}
