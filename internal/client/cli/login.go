package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.store.Login(ctx, email, password); err != nil {
		return err
	}

	user := c.store.User()

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as: %s <%s>\n", user.Name, user.Email)

	if count := c.store.CartItemCount(); count > 0 {
		c.io.Printf("Your cart has been restored: %d item(s).\n", count)
	}

	return nil
}
