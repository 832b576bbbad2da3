package cli

import (
	"strings"
	"testing"

	"github.com/eisbaw/nemlig-cli/internal/nemlig"
)

func TestFormatProduct(t *testing.T) {
	t.Parallel()

	p := nemlig.Product{
		ID:           "701025",
		Name:         "Cocio Classic",
		Brand:        "Cocio",
		Description:  "0,4 l",
		Price:        12.5,
		PrimaryImage: "https://img.example/701025.jpg",
		Availability: nemlig.Availability{IsAvailableInStock: true},
	}
	got := formatProduct(p)
	want := "  [701025] Cocio Classic (Cocio) - 12.50 kr - 0,4 l [In stock]\n    Image: https://img.example/701025.jpg"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	p.Availability.IsAvailableInStock = false
	p.PrimaryImage = ""
	if got := formatProduct(p); !strings.Contains(got, "[OUT OF STOCK]") || strings.Contains(got, "Image:") {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestFormatBasketLine(t *testing.T) {
	t.Parallel()

	l := nemlig.BasketLine{ID: "701025", Name: "Cocio", Brand: "Cocio", Quantity: 2, ItemPrice: 10, Price: 20}
	want := "  [701025] Cocio (Cocio) x2 @ 10.00 kr = 20.00 kr"
	if got := formatBasketLine(l); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatOrderSummary(t *testing.T) {
	t.Parallel()

	o := nemlig.OrderSummary{
		ID:          555,
		OrderNumber: "N-555",
		OrderDate:   "2025-11-25T06:07:18Z",
		Total:       350,
		Status:      4,
		DeliveryTime: &nemlig.DeliveryTime{
			Start: "2025-11-26T17:00:00Z",
			End:   "2025-11-26T19:00:00Z",
		},
	}
	want := "  [555] N-555 - 2025-11-25 - 350.00 kr - Delivered - Delivery: 2025-11-26 17:00-19:00"
	if got := formatOrderSummary(o); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	o.DeliveryTime = nil
	o.Status = 7
	got := formatOrderSummary(o)
	if !strings.Contains(got, "Delivery: N/A") || !strings.Contains(got, "Status 7") {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestFormatOrderDetails(t *testing.T) {
	t.Parallel()

	o := nemlig.OrderSummary{ID: 555, OrderNumber: "N-555", Total: 350, SubTotal: 300}
	lines := []nemlig.OrderLine{
		{ProductNumber: "701025", ProductName: "Cocio", Description: "0,4 l", Quantity: 2, Amount: 25, AverageItemPrice: 12.5, HasCampaign: true},
	}
	got := formatOrderDetails(o, lines)

	for _, want := range []string{
		"Order N-555\n===========",
		"Subtotal:     300.00 kr",
		"Delivery:     50.00 kr",
		"Total:        350.00 kr",
		"[701025] Cocio - 0,4 l x2 @ 12.50 kr = 25.00 kr [OFFER]",
		"Lines total: 25.00 kr",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatProductDetails(t *testing.T) {
	t.Parallel()

	p := nemlig.ProductDetail{
		ID:             "701025",
		Name:           "Cocio Classic",
		Brand:          "Cocio",
		Description:    "0,4 l",
		Category:       "Drikkevarer",
		SubCategory:    "Kakao",
		Price:          12.5,
		UnitPriceCalc:  31.25,
		UnitPriceLabel: "kr/l",
		Campaign:       &nemlig.Campaign{Type: "MixMatch", MinQuantity: 3, TotalPrice: 30},
		Availability:   nemlig.Availability{IsAvailableInStock: true, IsDeliveryAvailable: true},
		Attributes:     []nemlig.Attribute{{Name: "Økologisk", Value: "Nej"}},
		Labels:         []string{"Frost"},
		Text:           "<p>Chocolate <b>milk</b> from Denmark.</p>",
		URL:            "products/cocio-701025",
	}
	got := formatProductDetails(p, "https://www.nemlig.com")

	for _, want := range []string{
		"Cocio Classic\n=============",
		"Category:    Drikkevarer > Kakao",
		"Price:       12.50 kr (31.25 kr/l)",
		"Campaign:    3 for 30.00 kr (MixMatch)",
		"Stock:       In stock",
		"Delivery:    Available",
		"Økologisk: Nej",
		"Labels:      Frost",
		"  Chocolate milk from Denmark.",
		"URL:         https://www.nemlig.com/products/cocio-701025",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<p>") {
		t.Fatalf("HTML leaked: %s", got)
	}
}

func TestStripHTMLTags(t *testing.T) {
	t.Parallel()

	if got := stripHTMLTags("<p>hej <b>verden</b></p>"); got != "hej verden" {
		t.Fatalf("got %q", got)
	}
	if got := stripHTMLTags("plain"); got != "plain" {
		t.Fatalf("got %q", got)
	}
}

func TestWrapText(t *testing.T) {
	t.Parallel()

	lines := wrapText(strings.Repeat("word ", 30), 40, "  ")
	if len(lines) < 3 {
		t.Fatalf("expected wrapping, got %d lines", len(lines))
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "  ") {
			t.Fatalf("missing indent: %q", l)
		}
		if len(l) > 40 {
			t.Fatalf("line too long: %q", l)
		}
	}

	if got := wrapText("", 40, "  "); len(got) != 0 {
		t.Fatalf("expected no lines for empty text, got %v", got)
	}
}
