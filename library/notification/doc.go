// Package notification delivers overdue and reminder messages to the users of the library.
//
// A Manager keeps a registry of subscribed observers keyed by user id and an append-only
// history of every dispatched message. Delivery is a synchronous call to Observer.Notify.
// UserObserver is the built-in observer: it stands in for an email gateway and keeps a
// timestamped log of what it received.
package notification
