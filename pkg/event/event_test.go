package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/storefront/pkg/event"
)

func TestFireReachesListenersInOrder(t *testing.T) {
	d := event.NewDispatcher()
	var got []string
	d.Listen("order.created", func(p any) { got = append(got, "a:"+p.(string)) })
	d.Listen("order.created", func(p any) { got = append(got, "b:"+p.(string)) })
	d.Listen("user.registered", func(any) { got = append(got, "wrong") })

	d.Fire("order.created", "1")
	assert.Equal(t, []string{"a:1", "b:1"}, got)
}

func TestNilDispatcherDropsEvents(t *testing.T) {
	var d *event.Dispatcher
	assert.NotPanics(t, func() { d.Fire("x", 1) })
}
