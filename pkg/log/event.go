package log

import (
	"fmt"
	"strings"
	"time"
)

// Event represents a single registry event emitted by a subject.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SubjectID uniquely identifies the emitting subject (UUID).
	SubjectID string `cbor:"2,keyasint"`

	// Subject is the human-readable subject name (e.g. a product name).
	Subject string `cbor:"3,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"4,keyasint"`

	// Subscriber is the subscriber name for SUBSCRIBED, UNSUBSCRIBED and DELIVERED.
	Subscriber string `cbor:"5,keyasint,omitempty"`

	// Count is the number of subscribers in a NOTIFYING round.
	Count int `cbor:"6,keyasint,omitempty"`
}

// Kind classifies the event type.
type Kind uint8

const (
	// KindSubscribed indicates a subscriber was added to the registry.
	KindSubscribed Kind = 0
	// KindUnsubscribed indicates a subscriber was removed from the registry.
	KindUnsubscribed Kind = 1
	// KindAvailable indicates the availability flag was set to true.
	KindAvailable Kind = 2
	// KindUnavailable indicates the availability flag was set to false.
	KindUnavailable Kind = 3
	// KindNotifying indicates a notification round is starting.
	KindNotifying Kind = 4
	// KindDelivered indicates a single subscriber was notified.
	KindDelivered Kind = 5
)

// AllKinds lists every kind in declaration order.
var AllKinds = []Kind{
	KindSubscribed,
	KindUnsubscribed,
	KindAvailable,
	KindUnavailable,
	KindNotifying,
	KindDelivered,
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSubscribed:
		return "SUBSCRIBED"
	case KindUnsubscribed:
		return "UNSUBSCRIBED"
	case KindAvailable:
		return "AVAILABLE"
	case KindUnavailable:
		return "UNAVAILABLE"
	case KindNotifying:
		return "NOTIFYING"
	case KindDelivered:
		return "DELIVERED"
	default:
		return "UNKNOWN"
	}
}

// ParseKind parses a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind: %q (valid: subscribed, unsubscribed, available, unavailable, notifying, delivered)", s)
}
