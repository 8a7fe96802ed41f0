// Package notifications shows short-lived status messages (success, error,
// warning, info) and dismisses them automatically.
//
// The package separates three concerns:
//
//   - Storage keeps the notifications currently on screen
//   - Deliverer renders and removes them (a UI, a log, a test recorder)
//   - Notifier assigns ids, orchestrates both, and runs dismissal timers
//
// # Usage
//
//	n := notifications.NewNotifier(notifications.NewMemoryStorage(), notifications.NewLogDeliverer(log))
//	defer n.Close()
//
//	n.Success(ctx, "Settings updated successfully!")
//
// Each notification disappears after the configured TTL (four seconds by
// default) or when Dismiss is called.
package notifications
