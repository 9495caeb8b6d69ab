package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/catalog"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/cli"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/suggest"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the category catalogs",
		Long:  `Display the static expense and income category catalogs.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			printCatalog(w, "Expense categories", catalog.ExpenseCategories)
			fmt.Fprintln(w)
			printCatalog(w, "Income categories", catalog.IncomeCategories)

			return nil
		},
	}

	cmd.AddCommand(suggestCategoryCmd())

	return cmd
}

func suggestCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <description...>",
		Short: "Preview the category suggestion for a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			description := strings.Join(args, " ")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			suggester, err := newSeededSuggester(ctx, store, currentUser())
			if err != nil {
				// Suggestions still work from keywords alone.
				suggester = suggest.NewSuggester()
			}

			category, confidence := suggester.SuggestWithConfidence(description)
			fmt.Printf("%s %s\n",
				cli.BoldStyle.Render(category.Name),
				cli.SubtleStyle.Render(fmt.Sprintf("(id %s, %.0f%% confidence)", category.ID, confidence*100)))
			return nil
		},
	}
}

func printCatalog(w *tabwriter.Writer, title string, categories []model.Category) {
	fmt.Fprintln(w, cli.TitleStyle.Render(title))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cli.BoldStyle.Render("ID"),
		cli.BoldStyle.Render("Name"),
		cli.BoldStyle.Render("Icon"))
	for _, cat := range categories {
		fmt.Fprintf(w, "%s\t%s\t%s\n", cat.ID, cat.Name, cat.Icon)
	}
}
