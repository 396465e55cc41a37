package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/internal/kernel"
	"github.com/shashiranjanraj/storefront/pkg/validate"
)

// validationError flattens a field → message map into one error.
func validationError(errs map[string]string) error {
	if !validate.HasErrors(errs) {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, m := range errs {
		msgs = append(msgs, m)
	}
	sort.Strings(msgs)
	return errors.New(strings.Join(msgs, "\n"))
}

// storefront register
func registerCmd(c *cli) *cobra.Command {
	var form services.RegisterForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			form.Normalize()
			if err := validationError(form.Validate()); err != nil {
				return err
			}
			ok, err := k.Auth.Register(form.Email, form.FullName, form.Password)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("email already registered, please login")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registration successful! Please login.")
			return nil
		}),
	}
	cmd.Flags().StringVar(&form.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password (at least 6 characters)")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm", "", "repeat the password")
	return cmd
}

// storefront login
func loginCmd(c *cli) *cobra.Command {
	var form services.LoginForm
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session on this device",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			form.Normalize()
			if err := validationError(form.Validate()); err != nil {
				return err
			}
			ok, err := k.Auth.Login(form.Email, form.Password)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("invalid email or password")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", form.Email)
			return nil
		}),
	}
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "password")
	return cmd
}

// storefront logout
func logoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session on this device",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			if err := k.Auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		}),
	}
}

// storefront whoami
func whoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, k *kernel.Kernel, _ []string) error {
			user, ok, err := k.Auth.CurrentUser()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.FullName, user.Email)
			return nil
		}),
	}
}
