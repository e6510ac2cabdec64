package cli

import (
	"context"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	sess := c.store.Session()
	if sess == nil {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'gophstore login' to authenticate.")
	} else {
		c.io.Println("Status: Authenticated")
		c.io.Printf("User:  %s <%s>\n", sess.User.Name, sess.User.Email)

		if sess.ExpiresAt > 0 {
			expiresAt := time.Unix(sess.ExpiresAt, 0)
			remaining := time.Until(expiresAt)

			c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
			if remaining > 0 {
				c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
			} else {
				c.io.Println("⚠️  Token has expired. Please login again.")
			}
		}
	}

	if lastErr := c.store.LastError(); lastErr != "" {
		c.io.Println()
		c.io.Printf("Last error: %s\n", lastErr)
	}

	c.io.Println()
	if count := c.store.CartItemCount(); count > 0 {
		c.io.Printf("Cart: %d item(s), total %d\n", count, c.store.CartTotal())
	} else {
		c.io.Println("Cart: empty")
	}

	return nil
}
