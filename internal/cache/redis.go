// Package cache is a read-through redis cache for the sellable catalog.
// The cache is optional: services accept a nil *Catalog and fall straight
// through to the repositories.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"event-booking/internal/data/entity"
	"event-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

const (
	packagesKey = "cache:packages"
	tablesKey   = "cache:tables"
)

type Catalog struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalog(config utils.RedisConfig) *Catalog {
	return &Catalog{
		client: redis.NewClient(&redis.Options{
			Addr:     config.Addr,
			Password: config.Password,
			DB:       config.DB,
		}),
		ttl: config.TTL,
	}
}

func (c *Catalog) GetPackages(ctx context.Context) ([]*entity.Package, error) {
	data, err := c.client.Get(ctx, packagesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var packages []*entity.Package
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *Catalog) SetPackages(ctx context.Context, packages []*entity.Package) error {
	payload, err := json.Marshal(packages)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, packagesKey, payload, c.ttl).Err()
}

func (c *Catalog) GetTables(ctx context.Context) ([]*entity.Table, error) {
	data, err := c.client.Get(ctx, tablesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var tables []*entity.Table
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *Catalog) SetTables(ctx context.Context, tables []*entity.Table) error {
	payload, err := json.Marshal(tables)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, tablesKey, payload, c.ttl).Err()
}

// InvalidateTables drops the cached table list after a claim changes
// availability.
func (c *Catalog) InvalidateTables(ctx context.Context) error {
	return c.client.Del(ctx, tablesKey).Err()
}
