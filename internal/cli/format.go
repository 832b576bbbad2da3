package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eisbaw/nemlig-cli/internal/nemlig"
)

var orderStatusNames = map[int]string{
	1: "Pending",
	2: "Processing",
	4: "Delivered",
}

func statusText(code int) string {
	if s, ok := orderStatusNames[code]; ok {
		return s
	}
	return fmt.Sprintf("Status %d", code)
}

func availabilityText(a nemlig.Availability) string {
	if a.IsAvailableInStock {
		return "In stock"
	}
	return "OUT OF STOCK"
}

func formatProduct(p nemlig.Product) string {
	line := fmt.Sprintf("  [%s] %s (%s) - %.2f kr - %s [%s]",
		p.ID, p.Name, p.Brand, p.Price, p.Description, availabilityText(p.Availability))
	if p.PrimaryImage != "" {
		line += "\n    Image: " + p.PrimaryImage
	}
	return line
}

func formatBasketLine(l nemlig.BasketLine) string {
	return fmt.Sprintf("  [%s] %s (%s) x%d @ %.2f kr = %.2f kr",
		l.ID, l.Name, l.Brand, l.Quantity, l.ItemPrice, l.Price)
}

func formatOrderSummary(o nemlig.OrderSummary) string {
	datePart := "Unknown"
	if o.OrderDate != "" {
		datePart, _, _ = strings.Cut(o.OrderDate, "T")
	}

	delivery := "N/A"
	if dt := o.DeliveryTime; dt != nil && dt.Start != "" && dt.End != "" {
		day, startTime, _ := strings.Cut(dt.Start, "T")
		_, endTime, _ := strings.Cut(dt.End, "T")
		delivery = fmt.Sprintf("%s %s-%s", day, clockPart(startTime), clockPart(endTime))
	}

	return fmt.Sprintf("  [%d] %s - %s - %.2f kr - %s - Delivery: %s",
		o.ID, o.OrderNumber, datePart, o.Total, statusText(o.Status), delivery)
}

// clockPart trims an ISO time-of-day down to HH:MM.
func clockPart(s string) string {
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}

func formatOrderLine(l nemlig.OrderLine) string {
	campaign := ""
	if l.HasCampaign {
		campaign = " [OFFER]"
	}
	return fmt.Sprintf("  [%s] %s - %s x%.0f @ %.2f kr = %.2f kr%s",
		l.ProductNumber, l.ProductName, l.Description, l.Quantity, l.AverageItemPrice, l.Amount, campaign)
}

func formatOrderDetails(o nemlig.OrderSummary, lines []nemlig.OrderLine) string {
	var b strings.Builder

	header := fmt.Sprintf("Order %s", o.OrderNumber)
	fmt.Fprintf(&b, "%s\n%s\n\n", header, strings.Repeat("=", len(header)))
	fmt.Fprintf(&b, "Order ID:     %d\n", o.ID)
	fmt.Fprintf(&b, "Subtotal:     %.2f kr\n", o.SubTotal)
	fmt.Fprintf(&b, "Delivery:     %.2f kr\n", o.Total-o.SubTotal)
	fmt.Fprintf(&b, "Total:        %.2f kr\n\n", o.Total)
	fmt.Fprintf(&b, "Items (%d):\n", len(lines))

	var linesTotal float64
	for _, l := range lines {
		fmt.Fprintf(&b, "%s\n", formatOrderLine(l))
		linesTotal += l.Amount
	}
	fmt.Fprintf(&b, "\n  Lines total: %.2f kr", linesTotal)

	return b.String()
}

func formatProductDetails(p nemlig.ProductDetail, baseURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", p.Name, strings.Repeat("=", len(p.Name)))
	fmt.Fprintf(&b, "ID:          %s\n", p.ID)
	fmt.Fprintf(&b, "Brand:       %s\n", p.Brand)
	fmt.Fprintf(&b, "Category:    %s > %s\n", p.Category, p.SubCategory)
	fmt.Fprintf(&b, "Description: %s\n\n", p.Description)
	fmt.Fprintf(&b, "Price:       %.2f kr (%.2f %s)\n", p.Price, p.UnitPriceCalc, p.UnitPriceLabel)

	if c := p.Campaign; c != nil {
		fmt.Fprintf(&b, "Campaign:    %d for %.2f kr (%s)\n", c.MinQuantity, c.TotalPrice, c.Type)
	}

	deliveryText := "Not available"
	if p.Availability.IsDeliveryAvailable {
		deliveryText = "Available"
	}
	fmt.Fprintf(&b, "\nStock:       %s\n", availabilityText(p.Availability))
	fmt.Fprintf(&b, "Delivery:    %s\n", deliveryText)

	if len(p.Attributes) > 0 {
		fmt.Fprintf(&b, "\nAttributes:\n")
		for _, a := range p.Attributes {
			fmt.Fprintf(&b, "  %s: %s\n", a.Name, a.Value)
		}
	}
	if len(p.Labels) > 0 {
		fmt.Fprintf(&b, "\nLabels:      %s\n", strings.Join(p.Labels, ", "))
	}

	if text := stripHTMLTags(p.Text); text != "" {
		fmt.Fprintf(&b, "\nAbout:\n")
		for _, line := range wrapText(text, 80, "  ") {
			fmt.Fprintf(&b, "%s\n", line)
		}
	}

	if p.URL != "" {
		fmt.Fprintf(&b, "\nURL:         %s/%s\n", strings.TrimRight(baseURL, "/"), p.URL)
	}

	return strings.TrimRight(b.String(), "\n")
}

var htmlTagRE = regexp.MustCompile(`<[^>]+>`)

func stripHTMLTags(html string) string {
	return strings.TrimSpace(htmlTagRE.ReplaceAllString(html, ""))
}

func wrapText(text string, width int, indent string) []string {
	var lines []string
	current := indent

	for _, word := range strings.Fields(text) {
		if len(current)+len(word)+1 > width {
			lines = append(lines, current)
			current = indent + word
			continue
		}
		if current == indent {
			current += word
		} else {
			current += " " + word
		}
	}
	if strings.TrimSpace(current) != "" {
		lines = append(lines, current)
	}
	return lines
}
