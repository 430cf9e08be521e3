package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Inspect and change the active cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the items of the active cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		c, err := a.carts.Refresh(ctx)
		if err != nil {
			return err
		}

		return printItems(cmd, c.Items)
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <articleID>",
	Short: "Add an article to the active cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		articleID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("article id %q: %w", args[0], err)
		}

		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		c, err := a.carts.Add(ctx, articleID)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added, %d item(s) in cart\n", c.ItemCount())
		return err
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <categoryID>",
	Short: "Remove the article of a category from the active cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("category id %q: %w", args[0], err)
		}

		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		removed, err := a.carts.Remove(ctx, categoryID)
		if err != nil {
			return err
		}
		if !removed {
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Nothing to remove for category %d\n", categoryID)
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed, %d item(s) in cart\n", a.counts.Count())
		return err
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the active cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		if err := a.carts.Clear(ctx); err != nil {
			return err
		}

		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
		return err
	},
}

var cartCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Turn the active cart into an order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		o, err := a.carts.Checkout(ctx)
		if err != nil {
			return err
		}

		return printOrder(cmd, o)
	},
}

func init() {
	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartRemoveCmd, cartClearCmd, cartCheckoutCmd)
}
