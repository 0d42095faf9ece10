package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"FlowerShop/models"
)

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (failingStore) Save(context.Context, string, []byte) error {
	return errors.New("disk on fire")
}

func TestAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a := NewAdapter(s, Namespace("one"), nil)

	items := []models.LineItem{
		{ID: 1, Name: "Букет", Price: 2900, Image: "/static/img/bouquets/1.jpg", Quantity: 2},
		{ID: 201, Name: "Роза красная", Price: 150, Quantity: 1},
	}
	require.NoError(t, a.Set(ctx, items))
	assert.Equal(t, items, a.Get(ctx))

	raw, err := s.Load(ctx, "cart:one")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":1,"name":"Букет","price":2900,"image":"/static/img/bouquets/1.jpg","quantity":2},
		{"id":201,"name":"Роза красная","price":150,"image":"","quantity":1}
	]`, string(raw))
}

func TestAdapter_AbsentIsEmpty(t *testing.T) {
	a := NewAdapter(NewMemoryStore(), "cart", nil)
	items := a.Get(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAdapter_NilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a := NewAdapter(s, "cart", nil)
	require.NoError(t, a.Set(ctx, nil))

	raw, err := s.Load(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestAdapter_UnparsableIsEmpty(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, "cart", []byte("{not json")))

	a := NewAdapter(s, "cart", zap.New(core))
	assert.Empty(t, a.Get(ctx))
	assert.Equal(t, 1, logs.FilterMessage("discarding unparsable cart").Len())

	require.NoError(t, s.Save(ctx, "cart", []byte("null")))
	items := a.Get(ctx)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAdapter_LoadErrorIsEmpty(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	a := NewAdapter(failingStore{}, "cart", zap.New(core))

	assert.Empty(t, a.Get(context.Background()))
	assert.Equal(t, 1, logs.FilterMessage("load cart failed").Len())
	assert.Error(t, a.Set(context.Background(), nil))
}

func TestAdapter_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a := NewAdapter(s, Namespace("a"), nil)
	b := NewAdapter(s, Namespace("b"), nil)

	require.NoError(t, a.Set(ctx, []models.LineItem{{ID: 1, Quantity: 1}}))
	assert.Len(t, a.Get(ctx), 1)
	assert.Empty(t, b.Get(ctx))

	_, err := s.Load(ctx, "cart:a")
	assert.NoError(t, err)
}

func TestAdapter_CoercesQuotedNumbers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, "cart", []byte(`[
		{"id":"1","name":"Роза","price":100,"image":"r.jpg","quantity":2},
		{"id":2,"name":"Пион","price":"250","image":"p.jpg","quantity":"3"}
	]`)))

	items := NewAdapter(s, "cart", nil).Get(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, models.LineItem{ID: 1, Name: "Роза", Price: 100, Image: "r.jpg", Quantity: 2}, items[0])
	assert.Equal(t, models.LineItem{ID: 2, Name: "Пион", Price: 250, Image: "p.jpg", Quantity: 3}, items[1])
}
