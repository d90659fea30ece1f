package domain

import "time"

// Category описывает жанр/категорию каталога
type Category struct {
	ID        int64
	Name      string
	Slug      string
	ImageKey  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// CategorySummary — категория с количеством товаров в ней (для витрины).
type CategorySummary struct {
	Category
	ProductCount int64
}
