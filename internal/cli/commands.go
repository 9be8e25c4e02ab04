package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Store.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Println("Logged in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Store.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(profile)
		},
	}
}

func newProductsCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "products [id]",
		Short: "Browse the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid product id %q", args[0])
				}
				product, err := app.Store.Product(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(product)
			}
			products, err := app.Store.Products(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(products)
		},
	}
	cmd.Flags().StringVar(&query, "search", "", "Search query")
	return cmd
}

func newCartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := app.Store.Cart(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cart)
		},
	}

	var quantity int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			cart, err := app.Store.AddToCart(cmd.Context(), id, quantity)
			if err != nil {
				return err
			}
			return printJSON(cart)
		},
	}
	add.Flags().IntVar(&quantity, "quantity", 1, "Quantity")
	cmd.AddCommand(add)
	return cmd
}

func newOrdersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "orders [id]",
		Short: "List orders, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid order id %q", args[0])
				}
				order, err := app.Store.Order(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(order)
			}
			orders, err := app.Store.Orders(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(orders)
		},
	}
}
