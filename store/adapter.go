package store

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"FlowerShop/models"
)

// Adapter reads and writes one serialized cart under a fixed key.
type Adapter struct {
	store  Store
	key    string
	logger *zap.Logger
}

func NewAdapter(s Store, key string, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{store: s, key: key, logger: logger}
}

// Get returns the stored items. An absent or unreadable record is an empty cart.
func (a *Adapter) Get(ctx context.Context) []models.LineItem {
	data, err := a.store.Load(ctx, a.key)
	if errors.Is(err, ErrNotFound) {
		return []models.LineItem{}
	}
	if err != nil {
		a.logger.Warn("load cart failed", zap.String("key", a.key), zap.Error(err))
		return []models.LineItem{}
	}

	var items []models.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		a.logger.Warn("discarding unparsable cart", zap.String("key", a.key), zap.Error(err))
		return []models.LineItem{}
	}
	if items == nil {
		items = []models.LineItem{}
	}
	return items
}

// Set serializes the whole item list back to the store.
func (a *Adapter) Set(ctx context.Context, items []models.LineItem) error {
	if items == nil {
		items = []models.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return a.store.Save(ctx, a.key, data)
}
