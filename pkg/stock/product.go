package stock

import (
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patternkit/patternkit-go/pkg/log"
)

// Config holds product configuration.
type Config struct {
	// ID uniquely identifies the product in events. A random UUID is used if empty.
	ID string

	// Logger receives registry events. Nil disables event logging.
	Logger log.Logger

	// Clock returns event timestamps. Defaults to time.Now.
	Clock func() time.Time
}

// DefaultConfig returns the default product configuration.
func DefaultConfig() Config {
	return Config{
		Logger: log.NoopLogger{},
		Clock:  time.Now,
	}
}

// Product is a subject that notifies its subscribers when it comes back in stock.
type Product struct {
	mu sync.Mutex

	id     string
	name   string
	logger log.Logger
	clock  func() time.Time

	// available is the current stock flag; false until set.
	available bool

	// subscribers in registration order, each at most once.
	subscribers []Subscriber
}

// NewProduct creates an out-of-stock product with default configuration.
func NewProduct(name string) *Product {
	return NewProductWithConfig(name, DefaultConfig())
}

// NewProductWithConfig creates an out-of-stock product with custom configuration.
func NewProductWithConfig(name string, config Config) *Product {
	if config.ID == "" {
		config.ID = uuid.New().String()
	}
	if config.Logger == nil {
		config.Logger = log.NoopLogger{}
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	return &Product{
		id:     config.ID,
		name:   name,
		logger: config.Logger,
		clock:  config.Clock,
	}
}

// ID returns the product's unique identifier.
func (p *Product) ID() string {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Available reports whether the product is currently in stock.
func (p *Product) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.available
}

// Len returns the number of registered subscribers.
func (p *Product) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subscribers)
}

// Contains reports whether sub is registered.
func (p *Product) Contains(sub Subscriber) bool {
	if !identifiable(sub) {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.indexOf(sub) >= 0
}

// Subscribers returns a copy of the registry in registration order.
func (p *Product) Subscribers() []Subscriber {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot()
}

// Register adds sub to the registry.
// It returns false, without emitting an event, if sub is nil, not comparable
// or already registered.
func (p *Product) Register(sub Subscriber) bool {
	if !identifiable(sub) {
		return false
	}

	p.mu.Lock()
	if p.indexOf(sub) >= 0 {
		p.mu.Unlock()
		return false
	}
	p.subscribers = append(p.subscribers, sub)
	p.mu.Unlock()

	p.emit(log.Event{Kind: log.KindSubscribed, Subscriber: sub.Name()})
	return true
}

// Deregister removes sub from the registry.
// It returns false, without emitting an event, if sub is nil, not comparable
// or not registered.
func (p *Product) Deregister(sub Subscriber) bool {
	if !identifiable(sub) {
		return false
	}

	p.mu.Lock()
	i := p.indexOf(sub)
	if i < 0 {
		p.mu.Unlock()
		return false
	}
	p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
	p.mu.Unlock()

	p.emit(log.Event{Kind: log.KindUnsubscribed, Subscriber: sub.Name()})
	return true
}

// NotifyAll runs one notification round over the current registry and returns
// the number of subscribers notified. The NOTIFYING event is emitted first,
// even when nobody is registered.
func (p *Product) NotifyAll() int {
	p.mu.Lock()
	subs := p.snapshot()
	p.mu.Unlock()

	p.emit(log.Event{Kind: log.KindNotifying, Count: len(subs)})

	for _, sub := range subs {
		sub.Notify(p.name)
		p.emit(log.Event{Kind: log.KindDelivered, Subscriber: sub.Name()})
	}

	return len(subs)
}

// SetAvailability sets the stock flag and returns the number of notifications
// delivered. Setting true always runs a full round, regardless of the previous
// value; setting false never notifies.
func (p *Product) SetAvailability(available bool) int {
	p.mu.Lock()
	p.available = available
	p.mu.Unlock()

	if !available {
		p.emit(log.Event{Kind: log.KindUnavailable})
		return 0
	}

	p.emit(log.Event{Kind: log.KindAvailable})
	return p.NotifyAll()
}

// identifiable reports whether sub can be told apart from other subscribers
// with ==. Only identifiable subscribers are ever stored.
func identifiable(sub Subscriber) bool {
	return sub != nil && reflect.ValueOf(sub).Comparable()
}

// indexOf returns the registry position of sub, or -1. Caller holds p.mu.
func (p *Product) indexOf(sub Subscriber) int {
	for i, s := range p.subscribers {
		if s == sub {
			return i
		}
	}
	return -1
}

// snapshot copies the registry. Caller holds p.mu.
func (p *Product) snapshot() []Subscriber {
	out := make([]Subscriber, len(p.subscribers))
	copy(out, p.subscribers)
	return out
}

// emit fills in the subject fields and hands the event to the logger.
func (p *Product) emit(event log.Event) {
	event.Timestamp = p.clock()
	event.SubjectID = p.id
	event.Subject = p.name
	p.logger.Log(event)
}
