package stock_test

import (
	"testing"

	"github.com/patternkit/patternkit-go/pkg/log"
	logmocks "github.com/patternkit/patternkit-go/pkg/log/mocks"
	"github.com/patternkit/patternkit-go/pkg/stock"
	"github.com/patternkit/patternkit-go/pkg/stock/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductNotifiesMocksInRegistrationOrder(t *testing.T) {
	first := mocks.NewMockSubscriber(t)
	second := mocks.NewMockSubscriber(t)
	first.EXPECT().Name().Return("first")
	second.EXPECT().Name().Return("second")

	mock.InOrder(
		first.EXPECT().Notify("Console").Return().Once(),
		second.EXPECT().Notify("Console").Return().Once(),
	)

	p := stock.NewProduct("Console")
	require.True(t, p.Register(first))
	require.True(t, p.Register(second))

	assert.Equal(t, 2, p.SetAvailability(true))
}

func TestProductUnavailableNeverNotifies(t *testing.T) {
	sub := mocks.NewMockSubscriber(t)
	sub.EXPECT().Name().Return("Alice")

	p := stock.NewProduct("Console")
	p.Register(sub)

	assert.Equal(t, 0, p.SetAvailability(false))
	sub.AssertNotCalled(t, "Notify", mock.Anything)
}

func TestProductEmitsEventsToLogger(t *testing.T) {
	logger := logmocks.NewMockLogger(t)
	sub := mocks.NewMockSubscriber(t)
	sub.EXPECT().Name().Return("Alice")
	sub.EXPECT().Notify("Console").Return().Once()

	isKind := func(k log.Kind) any {
		return mock.MatchedBy(func(e log.Event) bool {
			return e.Kind == k && e.SubjectID == "console-1" && e.Subject == "Console"
		})
	}

	mock.InOrder(
		logger.EXPECT().Log(isKind(log.KindSubscribed)).Return().Once(),
		logger.EXPECT().Log(isKind(log.KindAvailable)).Return().Once(),
		logger.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
			return e.Kind == log.KindNotifying && e.Count == 1
		})).Return().Once(),
		logger.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
			return e.Kind == log.KindDelivered && e.Subscriber == "Alice"
		})).Return().Once(),
	)

	p := stock.NewProductWithConfig("Console", stock.Config{ID: "console-1", Logger: logger})
	p.Register(sub)
	p.SetAvailability(true)
}

func TestProductDuplicateRegistrationEmitsNothing(t *testing.T) {
	logger := logmocks.NewMockLogger(t)
	sub := mocks.NewMockSubscriber(t)
	sub.EXPECT().Name().Return("Alice")

	logger.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
		return e.Kind == log.KindSubscribed
	})).Return().Once()

	p := stock.NewProductWithConfig("Console", stock.Config{Logger: logger})
	assert.True(t, p.Register(sub))
	assert.False(t, p.Register(sub))
	assert.Equal(t, 1, p.Len())
}
