package usecase

import (
	"time"

	"github.com/DRSN-tech/bookstore-backend/internal/domain"
)

// IDENTITY

// AuthState — состояние аутентификации запроса, передаётся внешним
// сессионным слоем. UserID == nil означает анонимного посетителя,
// SessionToken при этом обязателен.
type AuthState struct {
	UserID       *int64
	FirstName    string
	LastName     string
	SessionToken string
}

// Identity — результат разрешения владельца корзины: ключ владельца
// плюс запись покупателя для авторизованных.
type Identity struct {
	Key      domain.OwnerKey
	Customer *domain.Customer // nil для анонимных
}

// Anonymous сообщает, является ли владелец анонимным.
func (i *Identity) Anonymous() bool {
	return i.Customer == nil
}

// ORDER

// PlaceOrderReq — данные формы оформления заказа. Для авторизованных
// покупателей FirstName/LastName игнорируются и берутся из Identity.
type PlaceOrderReq struct {
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	BuyingType domain.BuyingType
	Comment    string
	OrderDate  time.Time
}

// CONTACT

// SendMessageReq — данные формы обратной связи.
type SendMessageReq struct {
	Name    string
	Address string
	Comment string
}

// CATALOG

// ProductView — товар витрины вместе с временной ссылкой на изображение.
type ProductView struct {
	Product  domain.Product
	ImageURL string
}

// CategoryView — категория витрины с количеством товаров и ссылкой на изображение.
type CategoryView struct {
	Category     domain.Category
	ProductCount int64
	ImageURL     string
}

// MainPageRes — данные главной страницы: категории и последние поступления.
type MainPageRes struct {
	Categories []CategoryView
	Products   []ProductView
}

// CategoryDetailRes — категория и её товары.
type CategoryDetailRes struct {
	Category CategoryView
	Products []ProductView
}

// ProductDetailRes — карточка товара и похожие товары той же категории.
type ProductDetailRes struct {
	Product domain.Product
	// Ref позволяет веб-слою строить ссылки add-to-cart без знания типа модели.
	Ref      domain.ProductRef
	ImageURL string
	Related  []ProductView
}

// ResolveItemsRes — разрешённые сущности каталога и ссылки, которые
// не удалось разрешить (товар удалён из каталога).
type ResolveItemsRes struct {
	Items    []domain.CatalogItem
	NotFound []domain.ProductRef
}

// INFRASTRUCTURE

// MailMessage — письмо для внешнего почтового стока.
type MailMessage struct {
	Subject string
	Body    string
	From    string
	To      []string
}

// MAPPERS

func NewMailMessage(subject, body, from string, to []string) *MailMessage {
	return &MailMessage{
		Subject: subject,
		Body:    body,
		From:    from,
		To:      to,
	}
}

func NewResolveItemsRes(items []domain.CatalogItem, notFound []domain.ProductRef) *ResolveItemsRes {
	return &ResolveItemsRes{
		Items:    items,
		NotFound: notFound,
	}
}
