package service

import "context"

// Hooks run after a write has committed. Implementations must not fail the
// caller: errors are theirs to log.
type Hooks interface {
	AfterWorkSaved(ctx context.Context, workID string)
	AfterHistoryAppended(ctx context.Context, entryID string)
}

func afterWorkSaved(ctx context.Context, h Hooks, workID string) {
	if h != nil && workID != "" {
		h.AfterWorkSaved(ctx, workID)
	}
}

func afterHistoryAppended(ctx context.Context, h Hooks, entryID string) {
	if h != nil && entryID != "" {
		h.AfterHistoryAppended(ctx, entryID)
	}
}
