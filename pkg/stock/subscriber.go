package stock

import (
	"fmt"
	"io"
	"sync"
)

// Subscriber receives restock notifications from a Product.
//
// Subscribers are compared by interface equality. A Product ignores
// subscribers whose dynamic value is not comparable, such as structs holding
// slices; pointer receivers are the usual choice.
type Subscriber interface {
	// Name identifies the subscriber in events and console output.
	Name() string

	// Notify is called once per notification round with the product name.
	Notify(product string)
}

// User is a subscriber that prints a notification line and remembers the
// products it was told about.
type User struct {
	name string
	w    io.Writer

	mu       sync.Mutex
	received []string
}

// NewUser creates a user writing notifications to w. A nil writer discards output.
func NewUser(name string, w io.Writer) *User {
	if w == nil {
		w = io.Discard
	}
	return &User{name: name, w: w}
}

// Name returns the user's name.
func (u *User) Name() string {
	return u.name
}

// Notify prints the notification and records the product.
func (u *User) Notify(product string) {
	u.mu.Lock()
	u.received = append(u.received, product)
	u.mu.Unlock()

	fmt.Fprintf(u.w, "[Notification to %s] The product '%s' is now back in stock!\n", u.name, product)
}

// Received returns the products this user was notified about, oldest first.
func (u *User) Received() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]string, len(u.received))
	copy(out, u.received)
	return out
}

// Compile-time interface satisfaction check.
var _ Subscriber = (*User)(nil)
