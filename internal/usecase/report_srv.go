package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bakerist/internal/data/entity"
	"bakerist/internal/data/repository"
	"bakerist/internal/dto/response"

	"go.uber.org/zap"
)

type ReportService interface {
	SalesReport(ctx context.Context, startDate, endDate string) (*response.SalesReportResponse, error)
}

type reportService struct {
	orders repository.OrderRepository
	log    *zap.Logger
}

func NewReportService(orders repository.OrderRepository, log *zap.Logger) ReportService {
	return &reportService{
		orders: orders,
		log:    log,
	}
}

// SalesReport aggregates orders placed within [startDate, endDate]
// inclusive. Dates arrive as YYYY-MM-DD; the end date covers the whole
// day. Day boundaries use the server's local clock, the same clock that
// stamps orders at checkout, so midnight-adjacent orders stay inside
// their day on any host timezone.
func (s *reportService) SalesReport(ctx context.Context, startDate, endDate string) (*response.SalesReportResponse, error) {
	start, err := time.ParseInLocation(time.DateOnly, startDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.ParseInLocation(time.DateOnly, endDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("validation failed: invalid end_date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("validation failed: end_date is before start_date")
	}

	// extend to end of day so the range is inclusive
	endOfDay := end.Add(24*time.Hour - time.Nanosecond)

	orders, err := s.orders.FindCreatedBetween(ctx, start, endOfDay)
	if err != nil {
		s.log.Error("Failed to load orders for report",
			zap.Error(err),
			zap.String("start_date", startDate),
			zap.String("end_date", endDate))
		return nil, fmt.Errorf("failed to generate report")
	}

	report := buildSalesReport(orders)
	report.StartDate = startDate
	report.EndDate = endDate

	s.log.Info("Sales report generated",
		zap.String("start_date", startDate),
		zap.String("end_date", endDate),
		zap.Int("total_orders", report.TotalOrders))

	return report, nil
}

// topProductLimit caps the ranking shown on the admin dashboard.
const topProductLimit = 5

// buildSalesReport folds the order list into summary figures. Kept free
// of I/O so the arithmetic is testable on its own.
func buildSalesReport(orders []*entity.Order) *response.SalesReportResponse {
	report := &response.SalesReportResponse{
		TopProducts: []response.TopProduct{},
	}

	type productAgg struct {
		name     string
		quantity int
		revenue  float64
	}
	byProduct := make(map[string]*productAgg)

	for _, order := range orders {
		report.TotalOrders++
		report.TotalRevenue += order.Total

		for _, item := range order.Items {
			key := item.ProductID.String()
			agg, ok := byProduct[key]
			if !ok {
				agg = &productAgg{name: item.Name}
				byProduct[key] = agg
			}
			agg.quantity += item.Quantity
			agg.revenue += item.Price * float64(item.Quantity)
		}
	}

	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}

	for id, agg := range byProduct {
		report.TopProducts = append(report.TopProducts, response.TopProduct{
			ProductID:    id,
			Name:         agg.name,
			QuantitySold: agg.quantity,
			Revenue:      agg.revenue,
		})
	}

	// quantity descending, product id ascending on ties for determinism
	sort.Slice(report.TopProducts, func(i, j int) bool {
		if report.TopProducts[i].QuantitySold != report.TopProducts[j].QuantitySold {
			return report.TopProducts[i].QuantitySold > report.TopProducts[j].QuantitySold
		}
		return report.TopProducts[i].ProductID < report.TopProducts[j].ProductID
	})

	if len(report.TopProducts) > topProductLimit {
		report.TopProducts = report.TopProducts[:topProductLimit]
	}

	return report
}
