package domain

// CatalogTypeProduct — единственный тип каталога на сегодня. Дискриминатор
// оставлен строковым, чтобы новые типы сущностей каталога не требовали
// изменения схемы корзины.
const CatalogTypeProduct = "product"

// ProductRef — полиморфная ссылка на сущность каталога: дискриминатор типа + id.
type ProductRef struct {
	Type string
	ID   int64
}

func NewProductRef(ctType string, id int64) ProductRef {
	return ProductRef{Type: ctType, ID: id}
}

// CatalogItem — срез данных сущности каталога, достаточный для корзины:
// живая цена, остаток и атрибуты для отображения.
type CatalogItem struct {
	Ref      ProductRef
	Title    string
	Slug     string
	Price    int64 // копейки
	Quantity int32 // остаток на складе
	ImageKey string
}
