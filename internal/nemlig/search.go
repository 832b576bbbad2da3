package nemlig

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

type searchResponse struct {
	Products struct {
		Products []Product `json:"Products"`
	} `json:"Products"`
}

// Search queries the search gateway. The gateway demands a catalog timestamp
// and timeslot fetched from the settings endpoints first.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 10
	}

	sc, err := c.SearchContextValues(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("take", strconv.Itoa(limit))
	q.Set("skip", "0")
	q.Set("recipeCount", "0")
	q.Set("timestamp", sc.Timestamp)
	q.Set("timeslotUtc", sc.TimeslotUTC)
	q.Set("deliveryZoneId", strconv.Itoa(sc.DeliveryZoneID))
	if sc.UserID != "" {
		q.Set("includeFavorites", sc.UserID)
	}

	var out searchResponse
	if err := c.getJSON(ctx, c.searchURL, "search", q, &out); err != nil {
		return nil, err
	}
	return out.Products.Products, nil
}

// ProductDetails resolves a product ID to its full detail block. The detail
// endpoint is addressed by the product's page URL (it embeds a name slug), so
// a search for the ID runs first to find that URL.
func (c *Client) ProductDetails(ctx context.Context, productID string) (ProductDetail, error) {
	hits, err := c.Search(ctx, productID, 5)
	if err != nil {
		return ProductDetail{}, err
	}

	var productURL string
	for _, p := range hits {
		if p.ID == productID {
			productURL = p.URL
			break
		}
	}
	if productURL == "" {
		return ProductDetail{}, &ProductNotFoundError{
			ProductID: productID,
			Reason:    fmt.Sprintf("search returned %d products but none matched the ID", len(hits)),
		}
	}

	sc, err := c.SearchContextValues(ctx)
	if err != nil {
		return ProductDetail{}, err
	}

	q := url.Values{}
	q.Set("GetAsJson", "1")
	q.Set("t", sc.TimeslotUTC)
	q.Set("d", "1")

	var page struct {
		Content []json.RawMessage `json:"content"`
	}
	if err := c.getJSON(ctx, c.baseURL, productURL, q, &page); err != nil {
		return ProductDetail{}, err
	}

	templates := make([]string, 0, len(page.Content))
	for _, raw := range page.Content {
		var head struct {
			TemplateName string `json:"TemplateName"`
		}
		if err := json.Unmarshal(raw, &head); err != nil {
			continue
		}
		if head.TemplateName != "productdetailspot" {
			templates = append(templates, head.TemplateName)
			continue
		}
		var detail ProductDetail
		if err := json.Unmarshal(raw, &detail); err != nil {
			return ProductDetail{}, fmt.Errorf("%s: decode productdetailspot: %w", productURL, err)
		}
		return detail, nil
	}

	return ProductDetail{}, &ProductNotFoundError{
		ProductID: productID,
		Reason:    fmt.Sprintf("no productdetailspot in page response (templates: %v)", templates),
	}
}
