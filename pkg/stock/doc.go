// Package stock implements restock notifications for products.
//
// A Product keeps an availability flag and a registry of subscribers. Whenever
// the flag is set to true, every subscriber registered at that moment is
// notified once, in registration order.
//
// # Registry
//
// Subscribers are unique by identity. Registering a subscriber twice, or
// deregistering one that is not registered, is a silent no-op; the boolean
// result tells the caller whether the registry changed.
//
// # Notification Rounds
//
// SetAvailability(true) always runs a full round, even if the product was
// already available. SetAvailability(false) never notifies. A round iterates
// a snapshot of the registry taken when it starts, so subscribers may register
// or deregister from inside Notify without affecting the round in progress.
//
// # Events
//
// Every registry change, availability change and delivery is reported to the
// configured log.Logger (see package log).
package stock
