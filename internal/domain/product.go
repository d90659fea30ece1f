package domain

import "time"

// Product описывает книгу в каталоге
type Product struct {
	ID          int64
	CategoryID  int64
	Title       string
	Slug        string
	ImageKey    string
	Description string
	Price       int64 // Цена хранится в копейках
	Author      string
	Length      int32 // Количество страниц
	Quantity    int32 // Остаток на складе
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
