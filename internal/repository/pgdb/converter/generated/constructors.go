package generated

func NewCategoryConverterImpl() *CategoryConverterImpl {
	return &CategoryConverterImpl{}
}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func NewCustomerConverterImpl() *CustomerConverterImpl {
	return &CustomerConverterImpl{}
}

func NewCartConverterImpl() *CartConverterImpl {
	return &CartConverterImpl{}
}

func NewCartItemConverterImpl() *CartItemConverterImpl {
	return &CartItemConverterImpl{}
}

func NewOrderConverterImpl() *OrderConverterImpl {
	return &OrderConverterImpl{}
}

func NewContactConverterImpl() *ContactConverterImpl {
	return &ContactConverterImpl{}
}
