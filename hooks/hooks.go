// Package hooks provides the hook interface for dictionary reload events.
package hooks

import (
	"context"
)

// Hooks defines the interface for observing dictionary reloads.
// Implement this interface to record reload metrics or alert on stale
// word lists.
type Hooks interface {
	// OnWordlistReloaded is called after a new snapshot was swapped in.
	OnWordlistReloaded(ctx context.Context, e WordlistReloadedEvent) error

	// OnReloadFailed is called when a reload cycle gives up after retries.
	OnReloadFailed(ctx context.Context, e ReloadFailedEvent) error
}

// NopHooks is a no-op implementation of Hooks.
type NopHooks struct{}

// OnWordlistReloaded does nothing.
func (NopHooks) OnWordlistReloaded(ctx context.Context, e WordlistReloadedEvent) error {
	return nil
}

// OnReloadFailed does nothing.
func (NopHooks) OnReloadFailed(ctx context.Context, e ReloadFailedEvent) error {
	return nil
}

// Ensure NopHooks implements Hooks.
var _ Hooks = NopHooks{}

// ChainHooks chains multiple Hooks implementations.
type ChainHooks []Hooks

// OnWordlistReloaded calls all hooks in order.
func (ch ChainHooks) OnWordlistReloaded(ctx context.Context, e WordlistReloadedEvent) error {
	for _, h := range ch {
		if err := h.OnWordlistReloaded(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// OnReloadFailed calls all hooks in order.
func (ch ChainHooks) OnReloadFailed(ctx context.Context, e ReloadFailedEvent) error {
	for _, h := range ch {
		if err := h.OnReloadFailed(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// FuncHooks allows using functions as hooks.
type FuncHooks struct {
	OnWordlistReloadedFunc func(ctx context.Context, e WordlistReloadedEvent) error
	OnReloadFailedFunc     func(ctx context.Context, e ReloadFailedEvent) error
}

// OnWordlistReloaded calls the function if set.
func (fh FuncHooks) OnWordlistReloaded(ctx context.Context, e WordlistReloadedEvent) error {
	if fh.OnWordlistReloadedFunc != nil {
		return fh.OnWordlistReloadedFunc(ctx, e)
	}
	return nil
}

// OnReloadFailed calls the function if set.
func (fh FuncHooks) OnReloadFailed(ctx context.Context, e ReloadFailedEvent) error {
	if fh.OnReloadFailedFunc != nil {
		return fh.OnReloadFailedFunc(ctx, e)
	}
	return nil
}
