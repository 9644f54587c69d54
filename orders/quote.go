package orders

import "homecook-api/models"

// Pricing constants. Tax is a flat 10% of the subtotal; delivery costs a
// fixed fee and only applies when the buyer asked for delivery and the chef
// actually offers it.
const (
	TaxRate         = 0.10
	FlatDeliveryFee = 5.0
)

// QuoteLine is one priced cart line. Price is the menu price captured at
// quote time.
type QuoteLine struct {
	MenuID   uint
	Title    string
	Quantity int
	Price    float64
}

func (l QuoteLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Quote is the computed pricing breakdown for a cart.
type Quote struct {
	Lines       []QuoteLine
	Subtotal    float64
	Tax         float64
	DeliveryFee float64
	Total       float64
}

// BuildQuote prices a cart: subtotal over line totals, 10% tax, and the
// flat delivery fee when the option and the chef's capability both allow it.
func BuildQuote(lines []QuoteLine, option models.DeliveryOption, chefDelivers bool) Quote {
	q := Quote{Lines: lines}
	for _, l := range lines {
		q.Subtotal += l.LineTotal()
	}
	q.Tax = q.Subtotal * TaxRate
	if option == models.DeliveryOptionDelivery && chefDelivers {
		q.DeliveryFee = FlatDeliveryFee
	}
	q.Total = q.Subtotal + q.Tax + q.DeliveryFee
	return q
}
