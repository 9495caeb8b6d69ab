package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/alert"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/cli"
	"github.com/OmMTelrandhe/Paisa-Controller/internal/service"
)

func alertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Manage budget alerts",
		Long:  `List budget threshold alerts, re-run the alert check, and mark alerts seen.`,
	}

	cmd.AddCommand(listAlertsCmd())
	cmd.AddCommand(checkAlertsCmd())
	cmd.AddCommand(seenAlertCmd())
	cmd.AddCommand(clearAlertsCmd())

	return cmd
}

func listAlertsCmd() *cobra.Command {
	var unseenOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			alerts, err := store.GetAlerts(ctx, currentUser())
			if err != nil {
				return fmt.Errorf("failed to list alerts: %w", err)
			}

			shown := 0
			for _, a := range alerts {
				if unseenOnly && a.Seen {
					continue
				}
				shown++

				line := fmt.Sprintf("[%s] %s  %s", a.Date.Format("2006-01-02"), a.Message,
					cli.SubtleStyle.Render("id="+a.ID))
				switch {
				case a.Seen:
					fmt.Println(cli.SubtleStyle.Render(line))
				case a.Percentage >= alert.Threshold100:
					fmt.Println(cli.ErrorStyle.Render(line))
				default:
					fmt.Println(cli.WarningStyle.Render(line))
				}
			}

			if shown == 0 {
				fmt.Println(cli.InfoStyle.Render("No alerts."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unseenOnly, "unseen", "u", false, "only show unseen alerts")

	return cmd
}

func checkAlertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Re-run the budget threshold check",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return checkAndRenderAlerts(ctx, store, currentUser())
		},
	}
}

func seenAlertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seen <id>",
		Short: "Mark one alert as seen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := alert.NewEngine(store)
			if err := engine.MarkSeen(ctx, currentUser(), args[0]); err != nil {
				return fmt.Errorf("failed to mark alert seen: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Alert marked seen"))
			return nil
		},
	}
}

func clearAlertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Mark all unseen alerts as seen",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			engine := alert.NewEngine(store)
			if err := engine.ClearAll(ctx, currentUser()); err != nil {
				return fmt.Errorf("failed to clear alerts: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("All alerts cleared"))
			return nil
		},
	}
}

// checkAndRenderAlerts runs the alert engine against the current snapshot
// and prints any newly raised alerts.
func checkAndRenderAlerts(ctx context.Context, store service.Storage, userID string) error {
	budgets, transactions, err := loadBudgetInputs(ctx, store, userID)
	if err != nil {
		return err
	}

	engine := alert.NewEngine(store)
	for _, a := range engine.CheckAlerts(ctx, userID, budgets, transactions) {
		if a.Percentage >= alert.Threshold100 {
			fmt.Println(cli.ErrorStyle.Render("🚨 " + a.Message))
		} else {
			fmt.Println(cli.WarningStyle.Render("⚠ " + a.Message))
		}
	}
	return nil
}
