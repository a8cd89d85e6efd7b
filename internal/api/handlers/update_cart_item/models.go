package update_cart_item

import (
	"github.com/universalyoga/UYS-SyncService/internal/domain"
)

// UpdateCartItemRequest HTTP request model
// Количество 0 удаляет строку из корзины
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse HTTP response model строки корзины
type CartItemResponse struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// CartResponse HTTP response model корзины
type CartResponse struct {
	Items        []CartItemResponse `json:"items"`
	TotalAmount  float64            `json:"totalAmount"`
	TotalClasses int                `json:"totalClasses"`
}

// FromDomainCart конвертирует корзину в HTTP response
func FromDomainCart(entries []domain.CartEntry) *CartResponse {
	resp := &CartResponse{
		Items:        make([]CartItemResponse, 0, len(entries)),
		TotalAmount:  domain.CartTotal(entries),
		TotalClasses: domain.CartSize(entries),
	}

	for i := range entries {
		entry := &entries[i]
		resp.Items = append(resp.Items, CartItemResponse{
			ItemID:    entry.ItemID,
			Name:      entry.Item.Name,
			Date:      entry.Item.Date,
			StartTime: entry.Item.StartTime.String(),
			Price:     entry.Item.Price,
			Quantity:  entry.Quantity,
			LineTotal: entry.LineTotal(),
		})
	}

	return resp
}
