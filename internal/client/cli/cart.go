package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/gophstore/internal/models"
)

func (c *Cli) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.showCart()
	}

	switch args[0] {
	case "add":
		return c.cartAdd(ctx, args[1:])
	case "set":
		return c.cartSet(ctx, args[1:])
	case "remove":
		return c.cartRemove(ctx, args[1:])
	case "clear":
		if err := c.store.ClearCart(ctx); err != nil {
			return err
		}
		c.io.Println("✓ Cart cleared.")
		return nil
	default:
		return fmt.Errorf("unknown cart subcommand: %s", args[0])
	}
}

func (c *Cli) showCart() error {
	cart := c.store.Cart()

	c.io.Println("=== Cart ===")
	c.io.Println()

	if len(cart) == 0 {
		c.io.Println("Your cart is empty.")
		return nil
	}

	for _, line := range cart {
		c.io.Printf("  [%d] %s  x%d  @ %d = %d\n",
			line.ProductID, line.Name, line.Quantity, line.UnitPrice, line.Subtotal())
	}
	c.io.Println()
	c.io.Printf("Items: %d  Total: %d\n", c.store.CartItemCount(), c.store.CartTotal())

	return nil
}

// cartAdd добавляет товар по id: имя, цена и картинка берутся
// из детальной выборки каталога
func (c *Cli) cartAdd(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: gophstore cart add <productID> [qty]")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}

	qty := 1
	if len(args) == 2 {
		qty, err = strconv.Atoi(args[1])
		if err != nil || qty <= 0 {
			return fmt.Errorf("invalid quantity: %s", args[1])
		}
	}

	product, err := c.apiClient.FetchProductByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load product %d: %w", id, err)
	}

	line := models.CartLine{
		ProductID: product.ID,
		Name:      product.Title,
		UnitPrice: product.Price,
		Category:  product.Category.Name,
	}
	if len(product.Images) > 0 {
		line.Image = product.Images[0]
	}

	if err := c.store.AddToCart(ctx, line, qty); err != nil {
		return err
	}

	c.io.Printf("✓ Added %q x%d to the cart.\n", product.Title, qty)
	return c.showCart()
}

func (c *Cli) cartSet(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: gophstore cart set <productID> <qty>")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity: %s", args[1])
	}

	if err := c.store.UpdateQuantity(ctx, id, qty); err != nil {
		return err
	}

	if qty <= 0 {
		c.io.Printf("✓ Product %d removed from the cart.\n", id)
	} else {
		c.io.Printf("✓ Quantity updated.\n")
	}
	return c.showCart()
}

func (c *Cli) cartRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gophstore cart remove <productID>")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}

	if err := c.store.RemoveFromCart(ctx, id); err != nil {
		return err
	}

	c.io.Printf("✓ Product %d removed from the cart.\n", id)
	return c.showCart()
}
