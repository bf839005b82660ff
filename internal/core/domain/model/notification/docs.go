// Package notification provides the Notification aggregate stored in each user's inbox.
//
// Notifications are written by the order and verification workflows on a best-effort
// basis: a failure to store one never undoes the operation that raised it.
package notification
