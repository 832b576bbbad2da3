package nemlig

import (
	"context"
	"net/url"
)

// fallbackTimeslot is used when the front page settings carry no timeslot.
// The gateway accepts a stale value; results just lack delivery filtering.
const fallbackTimeslot = "2025120216-180-1020"

type appSettingsResponse struct {
	CombinedProductsAndSitecoreTimestamp string `json:"CombinedProductsAndSitecoreTimestamp"`
}

type pageResponse struct {
	Settings pageSettings `json:"Settings"`
}

type pageSettings struct {
	TimeslotUTC    string `json:"TimeslotUtc"`
	DeliveryZoneID int    `json:"DeliveryZoneId"`
	UserID         string `json:"UserId"`
}

// SearchContextValues collects the auxiliary values the search gateway
// requires: a catalog timestamp from the app settings endpoint and
// timeslot/zone/user values from the front page JSON.
func (c *Client) SearchContextValues(ctx context.Context) (SearchContext, error) {
	var app appSettingsResponse
	if err := c.getJSON(ctx, c.baseURL, "webapi/v2/AppSettings/Website", nil, &app); err != nil {
		return SearchContext{}, err
	}

	q := url.Values{}
	q.Set("GetAsJson", "1")
	q.Set("d", "1")

	var page pageResponse
	if err := c.getJSON(ctx, c.baseURL, "/", q, &page); err != nil {
		return SearchContext{}, err
	}

	sc := SearchContext{
		Timestamp:      app.CombinedProductsAndSitecoreTimestamp,
		TimeslotUTC:    page.Settings.TimeslotUTC,
		DeliveryZoneID: page.Settings.DeliveryZoneID,
		UserID:         page.Settings.UserID,
	}
	if sc.TimeslotUTC == "" {
		sc.TimeslotUTC = fallbackTimeslot
	}
	if sc.DeliveryZoneID == 0 {
		sc.DeliveryZoneID = 1
	}
	return sc, nil
}
