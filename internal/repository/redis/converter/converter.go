//go:generate goverter gen github.com/DRSN-tech/bookstore-backend/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/bookstore-backend/internal/domain"
)

// goverter:converter
// goverter:extend ConvertRef
type CatalogItemConverter interface {
	// goverter:map Ref.Type Type
	// goverter:map Ref.ID ID
	ToRedisModel(entity *domain.CatalogItem) *CatalogItemRedisModel
	// goverter:map . Ref
	ToEntity(model *CatalogItemRedisModel) *domain.CatalogItem
	ToArrRedisModel(entities []domain.CatalogItem) []CatalogItemRedisModel
	ToArrEntity(models []CatalogItemRedisModel) []domain.CatalogItem
}

func ConvertRef(model CatalogItemRedisModel) domain.ProductRef {
	return domain.ProductRef{Type: model.Type, ID: model.ID}
}
