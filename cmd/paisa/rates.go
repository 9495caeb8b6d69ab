package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/cli"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/currency"
)

func ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show current exchange rates",
		Long: fmt.Sprintf(`Fetch and display exchange rates for supported currencies relative to
the base currency (%s). Falls back to a static table when the rate API
is unreachable.`, currency.BaseCurrency),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rates := currency.NewRates()
			if err := rates.Refresh(ctx); err != nil {
				fmt.Println(cli.WarningStyle.Render("Rate API unreachable; showing fallback rates"))
			}

			snapshot := rates.Snapshot()
			codes := make([]string, 0, len(currency.Currencies))
			for _, c := range currency.Currencies {
				if _, ok := snapshot[c.Code]; ok {
					codes = append(codes, c.Code)
				}
			}
			sort.Strings(codes)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Code"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render(fmt.Sprintf("Rate per %s", currency.BaseCurrency)))

			for _, code := range codes {
				c, _ := currency.ByCode(code)
				fmt.Fprintf(w, "%s\t%s\t%.4f\n", c.Code, c.Name, snapshot[code])
			}

			fmt.Fprintln(w, cli.SubtleStyle.Render(
				fmt.Sprintf("Last updated: %s", rates.LastUpdated().Format("2006-01-02 15:04:05"))))
			return nil
		},
	}
}
