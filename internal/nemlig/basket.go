package nemlig

import "context"

// addToBasketPayload uses the vendor's mixed field casing verbatim.
type addToBasketPayload struct {
	ProductID                 string `json:"ProductId"`
	Quantity                  int    `json:"quantity"`
	AffectPartialQuantity     bool   `json:"AffectPartialQuantity"`
	DisableQuantityValidation bool   `json:"disableQuantityValidation"`
}

// GetBasket fetches the current shopping basket.
func (c *Client) GetBasket(ctx context.Context) (Basket, error) {
	var out Basket
	if err := c.getJSON(ctx, c.baseURL, "webapi/basket/GetBasket", nil, &out); err != nil {
		return Basket{}, err
	}
	return out, nil
}

// AddToBasket adds a product and returns the updated basket.
func (c *Client) AddToBasket(ctx context.Context, productID string, quantity int) (Basket, error) {
	if quantity <= 0 {
		quantity = 1
	}

	var out Basket
	err := c.postJSON(ctx, "webapi/basket/AddToBasket", addToBasketPayload{
		ProductID: productID,
		Quantity:  quantity,
	}, &out)
	if err != nil {
		return Basket{}, err
	}
	return out, nil
}
