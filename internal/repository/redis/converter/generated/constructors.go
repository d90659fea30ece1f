package generated

func NewCatalogItemConverterImpl() *CatalogItemConverterImpl {
	return &CatalogItemConverterImpl{}
}
