package catalog

// Default returns the built-in parts catalog used when no external
// source is configured.
func Default() []Product {
	return []Product{
		{ID: 1, Name: "Моторное масло Castrol 5W-30", Price: 2500, Category: "Масла", InStock: true},
		{ID: 2, Name: "Масляный фильтр Mann", Price: 450, Category: "Фильтры", InStock: true},
		{ID: 3, Name: "Воздушный фильтр Bosch", Price: 650, Category: "Фильтры", InStock: true},
		{ID: 4, Name: "Тормозные колодки Brembo", Price: 3200, Category: "Тормоза", InStock: true},
		{ID: 5, Name: "Тормозные диски ATE", Price: 4800, Category: "Тормоза", InStock: false},
		{ID: 6, Name: "Тормозная жидкость DOT 4", Price: 550, Category: "Тормоза", InStock: true},
		{ID: 7, Name: "Свечи зажигания NGK", Price: 1200, Category: "Зажигание", InStock: true},
		{ID: 8, Name: "Аккумулятор Varta 60Ач", Price: 6500, Category: "Электрика", InStock: true},
		{ID: 9, Name: "Лампы H7 Philips", Price: 800, Category: "Электрика", InStock: true},
		{ID: 10, Name: "Антифриз G12 красный", Price: 900, Category: "Жидкости", InStock: true},
		{ID: 11, Name: "Жидкость ГУР Febi", Price: 1100, Category: "Жидкости", InStock: false},
		{ID: 12, Name: "Щётки стеклоочистителя Bosch", Price: 1400, Category: "Стеклоочистители", InStock: true},
	}
}
