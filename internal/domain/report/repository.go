package report

import (
	"context"
)

// SnapshotRepository loads the engine's inputs within one read-consistent
// transaction.
type SnapshotRepository interface {
	LoadMonthSnapshot(ctx context.Context, employeeID string, month, year int, scope Scope) (Snapshot, error)
}
