package minio

import (
	"context"
	"net/url"

	"github.com/DRSN-tech/bookstore-backend/internal/cfg"
	"github.com/DRSN-tech/bookstore-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo реализует репозиторий изображений поверх MinIO.
// Изображения загружает внешний админ-контур; витрина только раздаёт
// временные ссылки на уже существующие объекты.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// PresignedURL возвращает временную ссылку на объект изображения.
func (i *ImageRepo) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	u, err := i.mc.PresignedGetObject(ctx, i.cfg.BucketName, objectKey, i.cfg.URLExpiry, url.Values{})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return u.String(), nil
}
