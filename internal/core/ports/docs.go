// Package ports defines the contracts between the marketplace core and its adapters:
// repositories bound to a unit of work, the notification sink used by workflows, and
// the publisher that pushes stored notifications to connected clients.
package ports
