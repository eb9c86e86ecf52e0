package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"taskflow/internal/entities"
)

func (c *CLI) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	var draft entities.LoginDraft
	fs.StringVar(&draft.Email, "email", "", "Account email.")
	fs.StringVar(&draft.Password, "password", "", "Account password.")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if _, err := c.uc.Login(ctx, draft); err != nil {
		// Rejected credentials are a failed action, not an expired session.
		return errors.New(err.Error())
	}
	if id := c.uc.CurrentUserID(); id != 0 {
		fmt.Fprintf(c.out, "Logged in as user %d\n", id)
		return nil
	}
	fmt.Fprintln(c.out, "Logged in")
	return nil
}

func (c *CLI) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	var draft entities.RegisterDraft
	fs.StringVar(&draft.Username, "username", "", "Display name.")
	fs.StringVar(&draft.Email, "email", "", "Account email.")
	fs.StringVar(&draft.Password, "password", "", "Password, at least 6 characters.")
	fs.StringVar(&draft.ConfirmPassword, "confirm", "", "Password confirmation.")
	fs.BoolVar(&draft.AcceptTerms, "accept-terms", false, "Accept the terms and conditions.")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if _, err := c.uc.Register(ctx, draft); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Registration successful, please log in")
	return nil
}

func (c *CLI) logout(ctx context.Context, args []string) error {
	if err := parseFlags(flag.NewFlagSet("logout", flag.ContinueOnError), args); err != nil {
		return err
	}
	c.uc.Logout(ctx)
	fmt.Fprintln(c.out, "Logged out")
	return nil
}
