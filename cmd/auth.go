package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/storage"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
	}

	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authRegisterCmd())
	cmd.AddCommand(authStatusCmd())
	cmd.AddCommand(authLogoutCmd())
	return cmd
}

func authLoginCmd() *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the booking service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				value, err := promptLine("Email: ")
				if err != nil {
					return err
				}
				email = value
			}
			if password == "" {
				value, err := promptPassword("Password: ")
				if err != nil {
					return err
				}
				password = value
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			ctx := context.Background()
			if _, err := client.Login(ctx, email, password); err != nil {
				return err
			}

			user, err := client.CurrentUser(ctx)
			if err != nil {
				return fmt.Errorf("fetch current user: %w", err)
			}

			creds := storage.Credentials{
				Token:  client.AccessToken,
				UserID: user.ID,
				Email:  email,
			}
			if err := storage.SaveCredentials(&creds); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func authRegisterCmd() *cobra.Command {
	var fullName string
	var email string
	var phone string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fullName == "" || email == "" {
				return fmt.Errorf("--name and --email are required")
			}

			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password: ")
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("password is required")
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			ctx := context.Background()
			err = client.Register(ctx, api.RegisterRequest{
				FullName: fullName,
				Email:    email,
				Phone:    phone,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Registered %s. Run 'datsan auth login' to sign in.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	return cmd
}

func authStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check auth status",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := storage.LoadCredentials()
			if err != nil {
				return err
			}
			if creds == nil || creds.Token == "" {
				fmt.Println("Not logged in.")
				return nil
			}

			client.AccessToken = creds.Token
			user, err := client.CurrentUser(context.Background())
			if err != nil {
				_ = storage.ClearCredentials()
				fmt.Printf("Session expired for %s. Run 'datsan auth login' to re-authenticate.\n", creds.Email)
				return nil
			}

			if outputJSON {
				return writeJSON(user)
			}
			fmt.Printf("Logged in as %s (%s).\n", user.FullName, user.Email)
			if len(user.Roles) > 0 {
				fmt.Printf("Roles: %s\n", strings.Join(user.Roles, ", "))
			}
			return nil
		},
	}

	return cmd
}

func authLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Logout and clear credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.ClearCredentials(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}

	return cmd
}

func promptLine(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bytes)), nil
}
