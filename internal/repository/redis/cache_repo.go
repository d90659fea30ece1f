package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/bookstore-backend/internal/cfg"
	"github.com/DRSN-tech/bookstore-backend/internal/domain"
	"github.com/DRSN-tech/bookstore-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/bookstore-backend/pkg/clients"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/DRSN-tech/bookstore-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// CacheRepo кэширует срезы данных каталога в Redis. Кэш вытесняется
// только по TTL; устаревшая цена в пределах TTL допустима для отображения,
// оформление заказа всегда пересчитывает по живым данным.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogItemConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.CatalogItemConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCatalogItems возвращает закэшированные сущности по ссылкам,
// игнорируя промахи и логируя повреждённые записи.
func (r *CacheRepo) GetCatalogItems(ctx context.Context, refs []domain.ProductRef) (map[domain.ProductRef]domain.CatalogItem, error) {
	keys := r.buildCacheKeys(refs)

	values, err := r.client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Warnf("Redis MGET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make(map[domain.ProductRef]domain.CatalogItem, len(values))
	for i, val := range values {
		data, err := redisValueToBytes(val, keys[i])
		if err != nil {
			r.logger.Warnf("%v", e.Wrap(whereami.WhereAmI(), err))
		}

		if data == nil {
			continue // cache miss
		}

		var model converter.CatalogItemRedisModel
		if err := json.Unmarshal(data, &model); err != nil {
			r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		item := r.conv.ToEntity(&model)
		if item.Ref != refs[i] {
			r.logger.Warnf("Cache ref mismatch: key: %s, model: %s:%d", keys[i], item.Ref.Type, item.Ref.ID)
			if err := r.client.Client.Del(context.Background(), keys[i]).Err(); err != nil {
				r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
			}
			continue // cache miss
		}
		result[refs[i]] = *item
	}

	return result, nil
}

// SetCatalogItems атомарно кэширует несколько записей с заданным TTL.
// Ошибки сериализации и записи не фатальны, только логируются.
func (r *CacheRepo) SetCatalogItems(ctx context.Context, items []domain.CatalogItem) error {
	models := r.conv.ToArrRedisModel(items)

	pipeline := r.client.Client.Pipeline()
	for _, model := range models {
		data, err := json.Marshal(model)
		if err != nil {
			r.logger.Warnf("Failed to marshal catalog item for caching (%s:%d): %v",
				model.Type, model.ID, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		key := r.itemKey(domain.ProductRef{Type: model.Type, ID: model.ID})
		pipeline.Set(ctx, key, data, r.cfg.CatalogTTL)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		r.logger.Warnf("Cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// buildCacheKeys формирует Redis-ключи из ссылок каталога
func (r *CacheRepo) buildCacheKeys(refs []domain.ProductRef) []string {
	keys := make([]string, len(refs))
	for i, ref := range refs {
		keys[i] = r.itemKey(ref)
	}

	return keys
}

// itemKey возвращает Redis-ключ для одной сущности каталога
func (r *CacheRepo) itemKey(ref domain.ProductRef) string {
	return fmt.Sprintf("catalog:%s:%d", ref.Type, ref.ID)
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil // cache miss
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
