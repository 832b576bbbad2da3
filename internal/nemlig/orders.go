package nemlig

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// maxOrderLookup caps how far back FindOrder scans when resolving an ID.
const maxOrderLookup = 100

// OrderHistoryPage fetches one page of past orders.
func (c *Client) OrderHistoryPage(ctx context.Context, skip, take int) (OrderHistory, error) {
	if take <= 0 {
		take = 10
	}

	q := url.Values{}
	q.Set("skip", strconv.Itoa(max(0, skip)))
	q.Set("take", strconv.Itoa(take))

	var out OrderHistory
	if err := c.getJSON(ctx, c.baseURL, "webapi/order/GetBasicOrderHistory", q, &out); err != nil {
		return OrderHistory{}, err
	}
	return out, nil
}

// FindOrder resolves an order ID to its summary. The API has no summary
// endpoint per order, so the recent history is scanned.
func (c *Client) FindOrder(ctx context.Context, orderID int) (OrderSummary, error) {
	page, err := c.OrderHistoryPage(ctx, 0, maxOrderLookup)
	if err != nil {
		return OrderSummary{}, err
	}
	for _, o := range page.Orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return OrderSummary{}, fmt.Errorf("order %d not found in last %d orders", orderID, maxOrderLookup)
}

// OrderDetails fetches the line items of a specific order.
func (c *Client) OrderDetails(ctx context.Context, orderID int) (OrderDetail, error) {
	path := fmt.Sprintf("webapi/v2/order/GetOrderHistory/%d", orderID)

	var out OrderDetail
	if err := c.getJSON(ctx, c.baseURL, path, nil, &out); err != nil {
		return OrderDetail{}, err
	}
	return out, nil
}
