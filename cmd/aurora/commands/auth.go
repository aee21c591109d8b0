package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aurora-io/aurora-go/internal/constants"
	"github.com/aurora-io/aurora-go/pkg/aurora"
)

// NewAuthCommand creates the auth command group
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage application users",
		Long:  "Sign application users in and out, and list the tenant's users",
	}

	cmd.AddCommand(newAuthSignInCommand())
	cmd.AddCommand(newAuthSessionCommand())
	cmd.AddCommand(newAuthSignOutCommand())
	cmd.AddCommand(newAuthUsersCommand())

	return cmd
}

// readPassword prompts for a password without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()

	return string(bytePassword), nil
}

func newAuthSignInCommand() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in an application user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return constants.ErrEmailRequired
			}

			if password == "" {
				var err error

				password, err = readPassword("Password: ")
				if err != nil {
					return err
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			session, err := client.Auth().SignIn(context.Background(), &aurora.SignInRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("failed to sign in: %w", err)
			}

			rendered, err := renderStructured(session)
			if rendered || err != nil {
				return err
			}

			fmt.Printf("Signed in as %s\n", session.User.Email)
			fmt.Printf("Token: %s\n", session.Token)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email (required)")
	cmd.Flags().StringVar(&password, "password", "", "user password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthSessionCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Validate a user session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return constants.ErrTokenRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			session, err := client.Auth().Session(context.Background(), token)
			if err != nil {
				return fmt.Errorf("failed to validate session: %w", err)
			}

			rendered, err := renderStructured(session)
			if rendered || err != nil {
				return err
			}

			fmt.Printf("Session for %s, expires %s\n",
				session.User.Email, session.ExpiresAt.Format("2006-01-02 15:04"))

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "session token (required)")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newAuthSignOutCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "signout",
		Short: "Sign out a user session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return constants.ErrTokenRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Auth().SignOut(context.Background(), token)
			if err != nil {
				return fmt.Errorf("failed to sign out: %w", err)
			}

			fmt.Println("Signed out")

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "session token (required)")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newAuthUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List the tenant's application users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			list, err := client.Auth().ListUsers(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			rendered, err := renderStructured(list)
			if rendered || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Email", "Name", "Created")

			for _, user := range list.Users {
				_ = table.Append(user.ID, user.Email, user.Name, user.CreatedAt.Format("2006-01-02"))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
