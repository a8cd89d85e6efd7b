package get_cart

import (
	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// CartItemResponse HTTP response model строки корзины
type CartItemResponse struct {
	ItemID     string  `json:"itemId"`
	Name       string  `json:"name"`
	Instructor string  `json:"instructor"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"lineTotal"`
}

// CartResponse HTTP response model корзины после сверки с каталогом
// RemovedItems перечисляет строки, выброшенные из корзины, потому что
// их занятия больше не существуют
type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	RemovedItems  []CartItemResponse `json:"removedItems"`
	TotalAmount   float64            `json:"totalAmount"`
	TotalClasses  int                `json:"totalClasses"`
	CatalogSource string             `json:"catalogSource"`
	CatalogFresh  bool               `json:"catalogFresh"`
}

// FromDomainCart конвертирует результат сверки в HTTP response
func FromDomainCart(survivors, removed []domain.CartEntry, source string, fresh bool) *CartResponse {
	resp := &CartResponse{
		Items:         make([]CartItemResponse, 0, len(survivors)),
		RemovedItems:  make([]CartItemResponse, 0, len(removed)),
		TotalAmount:   domain.CartTotal(survivors),
		TotalClasses:  domain.CartSize(survivors),
		CatalogSource: source,
		CatalogFresh:  fresh,
	}

	for i := range survivors {
		resp.Items = append(resp.Items, fromDomainEntry(&survivors[i]))
	}
	for i := range removed {
		resp.RemovedItems = append(resp.RemovedItems, fromDomainEntry(&removed[i]))
	}

	return resp
}

func fromDomainEntry(entry *domain.CartEntry) CartItemResponse {
	return CartItemResponse{
		ItemID:     entry.ItemID,
		Name:       entry.Item.Name,
		Instructor: entry.Item.Instructor,
		Date:       entry.Item.Date,
		StartTime:  entry.Item.StartTime.String(),
		Price:      entry.Item.Price,
		Quantity:   entry.Quantity,
		LineTotal:  entry.LineTotal(),
	}
}
