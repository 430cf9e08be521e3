package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var withArticles bool

var resolveCmd = &cobra.Command{
	Use:     "resolve <label>",
	Short:   "Map a free-text body-part label to a catalog category",
	Example: "  storefront resolve Tête\n  storefront resolve --articles hands",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := strings.Join(args, " ")
		out := cmd.OutOrStdout()

		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()

		if !withArticles {
			match, ok, err := a.catalog.Resolve(ctx, label)
			if err != nil {
				return err
			}
			if !ok {
				_, err = fmt.Fprintf(out, "No category for %q\n", label)
				return err
			}
			_, err = fmt.Fprintf(out, "%s (#%d) by %s match on %q\n", match.Category.Name, match.Category.ID, match.Rule, match.Via)
			return err
		}

		match, articles, ok, err := a.catalog.Articles(ctx, label)
		if err != nil {
			return err
		}
		if !ok {
			_, err = fmt.Fprintf(out, "No category for %q\n", label)
			return err
		}

		if _, err := fmt.Fprintf(out, "%s (#%d), %d article(s)\n", match.Category.Name, match.Category.ID, len(articles)); err != nil {
			return err
		}
		for _, article := range articles {
			if _, err := fmt.Fprintf(out, "  %s  %-8s %-10s %s\n", article.ID, article.State, formatMoney(article.Price), article.Description); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&withArticles, "articles", false, "Also list the category's articles")
}
