package nemlig

// Product is a search hit from the search gateway.
type Product struct {
	ID           string       `json:"Id"`
	Name         string       `json:"Name"`
	Brand        string       `json:"Brand"`
	Description  string       `json:"Description"`
	Price        float64      `json:"Price"`
	PrimaryImage string       `json:"PrimaryImage"`
	URL          string       `json:"Url"`
	Availability Availability `json:"Availability"`
}

type Availability struct {
	IsAvailableInStock  bool `json:"IsAvailableInStock"`
	IsDeliveryAvailable bool `json:"IsDeliveryAvailable"`
}

// ProductDetail is the productdetailspot block of a product page fetched with
// GetAsJson=1. It overlaps with Product but carries the long-form fields.
type ProductDetail struct {
	ID             string       `json:"Id"`
	Name           string       `json:"Name"`
	Brand          string       `json:"Brand"`
	Description    string       `json:"Description"`
	Category       string       `json:"Category"`
	SubCategory    string       `json:"SubCategory"`
	Price          float64      `json:"Price"`
	UnitPriceCalc  float64      `json:"UnitPriceCalc"`
	UnitPriceLabel string       `json:"UnitPriceLabel"`
	Campaign       *Campaign    `json:"Campaign"`
	Availability   Availability `json:"Availability"`
	Attributes     []Attribute  `json:"Attributes"`
	Labels         []string     `json:"Labels"`
	Text           string       `json:"Text"`
	URL            string       `json:"Url"`
}

type Campaign struct {
	Type        string  `json:"Type"`
	MinQuantity int     `json:"MinQuantity"`
	TotalPrice  float64 `json:"TotalPrice"`
}

type Attribute struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// Basket is the response of basket/GetBasket and basket/AddToBasket.
type Basket struct {
	Lines []BasketLine `json:"Lines"`
}

// Total sums the line totals. The API reports per-line totals only.
func (b Basket) Total() float64 {
	var total float64
	for _, l := range b.Lines {
		total += l.Price
	}
	return total
}

type BasketLine struct {
	ID        string  `json:"Id"`
	Name      string  `json:"Name"`
	Brand     string  `json:"Brand"`
	Quantity  int     `json:"Quantity"`
	ItemPrice float64 `json:"ItemPrice"`
	Price     float64 `json:"Price"`
}

// OrderHistory is the paginated order/GetBasicOrderHistory response.
type OrderHistory struct {
	Orders        []OrderSummary `json:"Orders"`
	NumberOfPages int            `json:"NumberOfPages"`
}

type OrderSummary struct {
	ID           int           `json:"Id"`
	OrderNumber  string        `json:"OrderNumber"`
	OrderDate    string        `json:"OrderDate"`
	Total        float64       `json:"Total"`
	SubTotal     float64       `json:"SubTotal"`
	Status       int           `json:"Status"`
	DeliveryTime *DeliveryTime `json:"DeliveryTime"`
}

type DeliveryTime struct {
	Start string `json:"Start"`
	End   string `json:"End"`
}

// OrderDetail is the v2/order/GetOrderHistory/{id} response.
type OrderDetail struct {
	Lines []OrderLine `json:"Lines"`
}

type OrderLine struct {
	ProductNumber    string  `json:"ProductNumber"`
	ProductName      string  `json:"ProductName"`
	Description      string  `json:"Description"`
	Quantity         float64 `json:"Quantity"`
	Amount           float64 `json:"Amount"`
	AverageItemPrice float64 `json:"AverageItemPrice"`
	HasCampaign      bool    `json:"HasCampaign"`
}

// SearchContext carries the auxiliary values the search gateway insists on.
// Both come from settings endpoints, not from anything the CLI owns.
type SearchContext struct {
	Timestamp      string
	TimeslotUTC    string
	DeliveryZoneID int
	UserID         string
}
