// Package alert implements the budget-threshold alerting engine. It compares
// spend-to-date per budget against 80/90/100 percent thresholds and raises
// at most one alert per budget per threshold per session.
package alert

import (
	"context"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/model"
)

// Store is the narrow slice of the persistence collaborator the engine
// needs. The full storage implementation satisfies it.
type Store interface {
	CreateAlert(ctx context.Context, alert *model.BudgetAlert) (*model.BudgetAlert, error)
	GetUnseenAlerts(ctx context.Context, userID, budgetID string) ([]model.BudgetAlert, error)
	MarkAlertSeen(ctx context.Context, userID, id string) error
	MarkAllAlertsSeen(ctx context.Context, userID string) error
}
