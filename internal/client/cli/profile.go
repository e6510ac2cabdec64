package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gophstore/internal/client/session"
	"github.com/iudanet/gophstore/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.showProfile()
	}

	switch args[0] {
	case "update":
		return c.profileUpdate(ctx)
	case "password":
		return c.profilePassword(ctx)
	case "avatar":
		return c.profileAvatar(ctx, args[1:])
	default:
		return fmt.Errorf("unknown profile subcommand: %s", args[0])
	}
}

func (c *Cli) showProfile() error {
	user := c.store.User()
	if user == nil {
		c.io.Println("Not authenticated. Run 'gophstore login' first.")
		return nil
	}

	c.io.Println("=== Profile ===")
	c.io.Println()
	c.io.Printf("ID:     %d\n", user.ID)
	c.io.Printf("Name:   %s\n", user.Name)
	c.io.Printf("Email:  %s\n", user.Email)
	if user.Avatar != "" {
		c.io.Printf("Avatar: %s\n", user.Avatar)
	}

	return nil
}

// profileUpdate меняет имя и/или email. Пустой ввод оставляет поле как есть.
func (c *Cli) profileUpdate(ctx context.Context) error {
	c.io.Println("=== Update Profile ===")
	c.io.Println("Leave a field empty to keep the current value.")
	c.io.Println()

	name, err := c.io.ReadInput("New name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	email, err := c.io.ReadInput("New email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	if name == "" && email == "" {
		c.io.Println("Nothing to update.")
		return nil
	}

	if err := c.store.UpdateProfile(ctx, api.UpdateUserRequest{Name: name, Email: email}); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Profile updated.")
	return c.showProfile()
}

func (c *Cli) profilePassword(ctx context.Context) error {
	c.io.Println("=== Change Password ===")
	c.io.Println()

	current, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password, err := c.io.ReadPassword("New password (min 8 chars, upper, lower, digit): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm new password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if err := c.store.UpdatePassword(ctx, current, password, confirm); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Password changed.")
	return nil
}

// profileAvatar загружает картинку и прописывает ее URL в профиль
func (c *Cli) profileAvatar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: gophstore profile avatar <path>")
	}

	// Без сессии загрузка бессмысленна, отказываем до сетевого вызова
	if !c.store.IsAuthenticated() {
		return session.ErrNotAuthenticated
	}

	location, err := c.store.UploadAvatar(ctx, args[0])
	if err != nil {
		return err
	}

	if err := c.store.UpdateProfile(ctx, api.UpdateUserRequest{Avatar: location}); err != nil {
		return err
	}

	c.io.Println("✓ Avatar updated.")
	c.io.Printf("URL: %s\n", location)
	return nil
}
