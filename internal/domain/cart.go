package domain

// CartEntry элемент корзины: ссылка на занятие каталога + количество мест
// Снимок полей занятия хранится денормализованно, чтобы корзина оставалась
// отображаемой даже при недоступности каталога
type CartEntry struct {
	ItemID   string
	Item     CatalogItem
	Quantity int
}

// LineTotal возвращает стоимость строки корзины
func (e *CartEntry) LineTotal() float64 {
	return e.Item.Price * float64(e.Quantity)
}

// AddToCart добавляет занятие в корзину
// Инвариант: не более одной записи на идентификатор занятия - повторное
// добавление накапливает количество
func AddToCart(cart []CartEntry, item CatalogItem) []CartEntry {
	for i := range cart {
		if cart[i].ItemID == item.ID {
			updated := make([]CartEntry, len(cart))
			copy(updated, cart)
			updated[i].Quantity++
			return updated
		}
	}

	updated := make([]CartEntry, len(cart), len(cart)+1)
	copy(updated, cart)
	return append(updated, CartEntry{ItemID: item.ID, Item: item, Quantity: 1})
}

// UpdateCartQuantity устанавливает количество для записи корзины
// Количество 0 удаляет запись
func UpdateCartQuantity(cart []CartEntry, itemID string, quantity int) []CartEntry {
	if quantity <= 0 {
		return RemoveFromCart(cart, itemID)
	}

	updated := make([]CartEntry, len(cart))
	copy(updated, cart)
	for i := range updated {
		if updated[i].ItemID == itemID {
			updated[i].Quantity = quantity
			break
		}
	}
	return updated
}

// RemoveFromCart удаляет запись корзины по идентификатору занятия
func RemoveFromCart(cart []CartEntry, itemID string) []CartEntry {
	updated := make([]CartEntry, 0, len(cart))
	for _, entry := range cart {
		if entry.ItemID != itemID {
			updated = append(updated, entry)
		}
	}
	return updated
}

// CartTotal возвращает суммарную стоимость корзины
func CartTotal(cart []CartEntry) float64 {
	total := 0.0
	for i := range cart {
		total += cart[i].LineTotal()
	}
	return total
}

// CartSize возвращает суммарное количество мест в корзине
func CartSize(cart []CartEntry) int {
	size := 0
	for i := range cart {
		size += cart[i].Quantity
	}
	return size
}

// ReconcileCart разделяет корзину на записи, чьи занятия все еще существуют
// в каталоге, и записи, чьи занятия были удалены администратором
//
// Чистая функция: survivors ∪ removed == cart, survivors ∩ removed == ∅.
// Проверяется только существование занятия - гонки по вместимости
// закрываются повторной валидацией при оформлении бронирования
func ReconcileCart(cart []CartEntry, catalog []CatalogItem) (survivors, removed []CartEntry) {
	ids := CatalogIDSet(catalog)

	survivors = make([]CartEntry, 0, len(cart))
	removed = make([]CartEntry, 0)

	for _, entry := range cart {
		if _, ok := ids[entry.ItemID]; ok {
			survivors = append(survivors, entry)
		} else {
			removed = append(removed, entry)
		}
	}

	return survivors, removed
}
