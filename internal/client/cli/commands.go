package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. Ошибки возвращаются вызывающему,
// main печатает их и выставляет код выхода.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "products":
		return c.runProducts(ctx, args)
	case "product":
		return c.runProduct(ctx, args)
	case "categories":
		return c.runCategories(ctx)
	case "category":
		return c.runCategory(ctx, args)
	case "cart":
		return c.runCart(ctx, args)
	case "profile":
		return c.runProfile(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
