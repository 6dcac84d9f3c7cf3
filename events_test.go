package lazy_test

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lazy "github.com/probablyarth/lazy-go"
)

type recorder struct {
	events []lazy.EventData
}

func (r *recorder) On(e lazy.EventData) {
	r.events = append(r.events, e)
}

func TestObserverEvents(t *testing.T) {
	rec := &recorder{}
	foo := lazy.NewClass("Foo", nil, lazy.WithObserver(rec)).
		Define("foo", lazy.Cached.New(func(lazy.Instance) any { return 1 }))
	bar := lazy.NewClass("Bar", foo)

	b := bar.New()
	mustGet(t, b, "foo")
	mustGet(t, b, "foo")
	require.NoError(t, lazy.Invalidate(b, "foo"))
	require.NoError(t, lazy.Invalidate(b, "foo"))

	assert.Equal(t, []lazy.EventData{
		{Event: lazy.EventMiss, Class: "Bar", Name: "foo", Kind: "cached"},
		{Event: lazy.EventHit, Class: "Bar", Name: "foo", Kind: "cached"},
		{Event: lazy.EventInvalidate, Class: "Bar", Name: "foo", Kind: "cached"},
	}, rec.events)
}

func TestObserverOverride(t *testing.T) {
	var parent, child int
	foo := lazy.NewClass("Foo", nil, lazy.WithObserver(lazy.ObserverFunc(func(lazy.EventData) { parent++ }))).
		Define("foo", lazy.New(func(lazy.Instance) any { return 1 }))
	bar := lazy.NewClass("Bar", foo, lazy.WithObserver(lazy.ObserverFunc(func(lazy.EventData) { child++ })))

	mustGet(t, bar.New(), "foo")
	mustGet(t, foo.New(), "foo")
	assert.Equal(t, 1, parent)
	assert.Equal(t, 1, child)
}

func TestLogObserver(t *testing.T) {
	h := memory.New()
	logger := &log.Logger{Handler: h, Level: log.DebugLevel}

	foo := lazy.NewClass("Foo", nil, lazy.WithObserver(lazy.NewLogObserver(logger))).
		Define("__foo", lazy.New(func(lazy.Instance) any { return 1 }))
	f := foo.New()

	_, err := foo.GetAttr(f, "__foo")
	require.NoError(t, err)
	_, err = foo.GetAttr(f, "__foo")
	require.NoError(t, err)

	require.Len(t, h.Entries, 2)
	assert.Equal(t, "miss", h.Entries[0].Message)
	assert.Equal(t, "hit", h.Entries[1].Message)
	assert.Equal(t, log.DebugLevel, h.Entries[0].Level)
	assert.Equal(t, "Foo", h.Entries[0].Fields.Get("class"))
	assert.Equal(t, "_Foo__foo", h.Entries[0].Fields.Get("attr"))
	assert.Equal(t, "lazy", h.Entries[0].Fields.Get("kind"))
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "hit", lazy.EventHit.String())
	assert.Equal(t, "miss", lazy.EventMiss.String())
	assert.Equal(t, "invalidate", lazy.EventInvalidate.String())
	assert.Equal(t, "unknown", lazy.Event(99).String())
}
