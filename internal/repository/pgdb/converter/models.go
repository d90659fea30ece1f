package converter

import "time"

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Slug      string     `db:"slug"`
	ImageKey  string     `db:"image_key"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	CategoryID  int64      `db:"category_id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	ImageKey    string     `db:"image_key"`
	Description string     `db:"description"`
	Price       int64      `db:"price"`
	Author      string     `db:"author"`
	Length      int32      `db:"length"`
	Quantity    int32      `db:"quantity"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// CustomerModel представляет запись таблицы customers в PostgreSQL.
type CustomerModel struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Phone     string    `db:"phone"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}

// CartModel представляет запись таблицы carts в PostgreSQL.
type CartModel struct {
	ID               int64      `db:"id"`
	CustomerID       *int64     `db:"customer_id"`
	SessionToken     *string    `db:"session_token"`
	TotalProducts    int32      `db:"total_products"`
	FinalPrice       int64      `db:"final_price"`
	InOrder          bool       `db:"in_order"`
	ForAnonymousUser bool       `db:"for_anonymous_user"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at"`
}

// CartItemModel представляет запись таблицы cart_items в PostgreSQL.
type CartItemModel struct {
	ID          int64  `db:"id"`
	CartID      int64  `db:"cart_id"`
	CustomerID  *int64 `db:"customer_id"`
	ProductType string `db:"product_type"`
	ProductID   int64  `db:"product_id"`
	Qty         int32  `db:"qty"`
	FinalPrice  int64  `db:"final_price"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID         int64     `db:"id"`
	CustomerID *int64    `db:"customer_id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Phone      string    `db:"phone"`
	CartID     int64     `db:"cart_id"`
	Address    string    `db:"address"`
	Status     string    `db:"status"`
	BuyingType string    `db:"buying_type"`
	Comment    string    `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
	OrderDate  time.Time `db:"order_date"`
}

// ContactModel представляет запись таблицы contacts в PostgreSQL.
type ContactModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Address   string    `db:"address"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
