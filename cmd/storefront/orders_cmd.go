package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Order history, reorder and status workflow",
}

var ordersHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List the orders of the current identity, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		identity, err := currentIdentity()
		if err != nil {
			return err
		}

		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		orders, err := a.orders.History(ctx, identity)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "No orders yet")
			return err
		}

		for _, o := range orders {
			if err := printOrder(cmd, o); err != nil {
				return err
			}
		}
		return nil
	},
}

var ordersReorderCmd = &cobra.Command{
	Use:   "reorder <orderID>",
	Short: "Add every article of a past order back to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseOrderID(args[0])
		if err != nil {
			return err
		}

		identity, err := currentIdentity()
		if err != nil {
			return err
		}

		// dispatches are staggered, so only cancellation bounds the whole run
		result, err := a.orders.Reorder(cmd.Context(), identity, orderID)
		if err != nil && result.Succeeded+result.Failed == 0 {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case result.Succeeded+result.Failed == 0:
			_, _ = fmt.Fprintln(out, "Order has no items")
		case result.Failed == 0:
			_, _ = fmt.Fprintf(out, "%d item(s) added to cart\n", result.Succeeded)
		case result.Succeeded == 0:
			_, _ = fmt.Fprintf(out, "No item could be added (%d failed)\n", result.Failed)
		default:
			_, _ = fmt.Fprintf(out, "%d item(s) added to cart, %d failed\n", result.Succeeded, result.Failed)
		}

		// the refresh error does not undo the additions above
		if err != nil {
			return fmt.Errorf("cart count may be stale: %w", err)
		}
		return nil
	},
}

var ordersAdvanceCmd = &cobra.Command{
	Use:   "advance <orderID> <STATUS>",
	Short: "Move an order to the next workflow status",
	Long: `Moves an order one step along PENDING -> PREPARING -> DELIVERED -> COMPLETED.
Skipping a step, going backwards or leaving COMPLETED is rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseOrderID(args[0])
		if err != nil {
			return err
		}

		target, err := domain.ParseOrderStatus(strings.ToUpper(strings.TrimSpace(args[1])))
		if err != nil {
			return err
		}

		if identity := a.identities.Identity(); identity == nil || !identity.IsAdmin() {
			log.Debug("status change requested without admin role")
		}

		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		o, err := a.orders.Advance(ctx, orderID, target)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Order #%d is now %s\n", o.ID, domain.StatusLabel(o.Status))
		return err
	},
}

var ordersStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count all orders per status and sum the revenue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		stats, err := a.orders.Stats(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if _, err := fmt.Fprintf(out, "Orders:  %d\nRevenue: %s\n", stats.TotalOrders, formatMoney(stats.Revenue)); err != nil {
			return err
		}
		for _, status := range domain.OrderStatuses() {
			if _, err := fmt.Fprintf(out, "  %-16s %d\n", domain.StatusLabel(status), stats.ByStatus[status]); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	ordersCmd.AddCommand(ordersHistoryCmd, ordersReorderCmd, ordersAdvanceCmd, ordersStatsCmd)
}

func parseOrderID(s string) (int64, error) {
	orderID, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("order id %q: %w", s, err)
	}
	return orderID, nil
}

func currentIdentity() (domain.Identity, error) {
	identity := a.identities.Identity()
	if identity == nil {
		return domain.Identity{}, fmt.Errorf("%w: run storefront login first", domain.ErrNoIdentity)
	}
	return *identity, nil
}
