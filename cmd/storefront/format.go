package main

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/spf13/cobra"
)

func formatMoney(m domain.Money) string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}

func printIdentity(cmd *cobra.Command, identity *domain.Identity, count int) error {
	out := cmd.OutOrStdout()

	if identity == nil {
		_, err := fmt.Fprintln(out, "Not signed in")
		return err
	}

	role := string(identity.Role)
	if identity.IsAdmin() {
		role += " (admin tools enabled)"
	}

	_, err := fmt.Fprintf(out, "%s (%s) %s\nCart: %d item(s)\n", identity.Username, identity.ID, role, count)
	return err
}

func printItems(cmd *cobra.Command, items []domain.CartItem) error {
	out := cmd.OutOrStdout()

	if len(items) == 0 {
		_, err := fmt.Fprintln(out, "Cart is empty")
		return err
	}

	for _, item := range items {
		if _, err := fmt.Fprintf(out, "  category %-4d %s  %-8s %s\n", item.CategoryID, item.ArticleID, item.State, formatMoney(item.Price)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(out, "%d item(s)\n", len(items))
	return err
}

func printOrder(cmd *cobra.Command, o domain.Order) error {
	total, err := o.Total()
	if err != nil {
		return fmt.Errorf("order %d total: %w", o.ID, err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Order #%d  %s  %s  %s\n",
		o.ID, o.PurchasedAt.Format("2006-01-02 15:04"), domain.StatusLabel(o.Status), formatMoney(total))
	if err != nil {
		return err
	}

	return printItems(cmd, o.Items)
}
