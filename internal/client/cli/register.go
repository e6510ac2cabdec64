package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/gophstore/internal/validation"
	"github.com/iudanet/gophstore/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if err := validation.ValidateName(name); err != nil {
		return err
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password (min 8 chars, upper, lower, digit): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	// Несовпадение подтверждения не доходит до сети
	if err := validation.ValidatePasswordConfirmation(password, confirm); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Registering account...")

	user, err := c.apiClient.SignUp(ctx, api.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %d\n", user.ID)
	c.io.Printf("Email:   %s\n", user.Email)
	c.io.Println()
	c.io.Println("Please run 'gophstore login' to start shopping.")

	return nil
}
