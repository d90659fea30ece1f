package converter

// CatalogItemRedisModel — JSON-представление среза данных товара в кэше.
type CatalogItemRedisModel struct {
	Type     string `json:"type"`
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Price    int64  `json:"price"`
	Quantity int32  `json:"quantity"`
	ImageKey string `json:"image_key"`
}
