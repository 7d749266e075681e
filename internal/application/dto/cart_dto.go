package dto

// AddCartItemRequest agrega un artículo al carrito. Si ya está, suma la cantidad.
type AddCartItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CartItemResponse línea del carrito con el artículo referenciado.
type CartItemResponse struct {
	ID       string        `json:"id"`
	ItemID   string        `json:"item_id"`
	Quantity int           `json:"quantity"`
	Item     *ItemResponse `json:"item,omitempty"`
}
