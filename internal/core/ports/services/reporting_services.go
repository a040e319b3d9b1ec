package services

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/engine"
)

// ReportingSvc exposes net-worth and analytics queries.
type ReportingSvc interface {
	// NetWorth splits account balances into assets and liabilities.
	NetWorth(ctx context.Context, userID string) (*engine.NetWorthSummary, error)

	// AgeOfMoney reports the trailing-window gap in days between earning
	// and spending.
	AgeOfMoney(ctx context.Context, userID string) (int, error)
}
