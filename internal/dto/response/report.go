package response

// TopProduct carries the per-product slice of a sales report, ranked by
// quantity sold.
type TopProduct struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

type SalesReportResponse struct {
	StartDate         string       `json:"start_date"`
	EndDate           string       `json:"end_date"`
	TotalOrders       int          `json:"total_orders"`
	TotalRevenue      float64      `json:"total_revenue"`
	AverageOrderValue float64      `json:"average_order_value"`
	TopProducts       []TopProduct `json:"top_products"`
}
