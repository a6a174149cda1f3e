package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidPeriod = errors.New("invalid analytics period")

// AnalyticsWindow is the resolved date range for one reporting period.
type AnalyticsWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Previous returns the immediately preceding window of the same length,
// used for period-over-period comparison.
func (w AnalyticsWindow) Previous() AnalyticsWindow {
	span := w.To.Sub(w.From)
	return AnalyticsWindow{From: w.From.Add(-span), To: w.From}
}

// ResolveWindow maps a requested period (7d, 30d, 90d, 1y) onto a concrete
// date range ending at now.
func ResolveWindow(period string, now time.Time) (AnalyticsWindow, error) {
	switch period {
	case "", "7d":
		return AnalyticsWindow{From: now.AddDate(0, 0, -7), To: now}, nil
	case "30d":
		return AnalyticsWindow{From: now.AddDate(0, 0, -30), To: now}, nil
	case "90d":
		return AnalyticsWindow{From: now.AddDate(0, 0, -90), To: now}, nil
	case "1y":
		return AnalyticsWindow{From: now.AddDate(-1, 0, 0), To: now}, nil
	default:
		return AnalyticsWindow{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
}

type RevenueReport struct {
	Total  float64      `json:"total"`
	Change float64      `json:"change"`
	Daily  []DayRevenue `json:"daily"`
}

type OrdersReport struct {
	Total    int            `json:"total"`
	Change   float64        `json:"change"`
	ByStatus map[string]int `json:"by_status"`
	ByHour   [24]HourBucket `json:"by_hour"`
}

type CustomersReport struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Returning int64 `json:"returning"`
}

type AnalyticsOverview struct {
	Period       string          `json:"period"`
	Window       AnalyticsWindow `json:"window"`
	Revenue      RevenueReport   `json:"revenue"`
	Orders       OrdersReport    `json:"orders"`
	PopularItems []PopularItem   `json:"popular_items"`
	Categories   []CategorySales `json:"categories"`
	Customers    CustomersReport `json:"customers"`
}

type DashboardStats struct {
	Today struct {
		Orders    int     `json:"orders"`
		Revenue   float64 `json:"revenue"`
		Pending   int     `json:"pending"`
		Completed int     `json:"completed"`
	} `json:"today"`
	Month struct {
		Orders        int     `json:"orders"`
		Revenue       float64 `json:"revenue"`
		RevenueChange float64 `json:"revenue_change"`
		OrdersChange  float64 `json:"orders_change"`
	} `json:"month"`
	TotalCustomers int64             `json:"total_customers"`
	RecentOrders   []*entities.Order `json:"recent_orders"`
	PopularItems   []PopularItem     `json:"popular_items"`
}

type AnalyticsUseCase struct {
	orderRepo    repositories.OrderRepository
	customerRepo repositories.CustomerRepository
	menuRepo     repositories.MenuRepository
	reportLoc    *time.Location
	logger       *logger.Logger
	now          func() time.Time
}

func NewAnalyticsUseCase(
	orderRepo repositories.OrderRepository,
	customerRepo repositories.CustomerRepository,
	menuRepo repositories.MenuRepository,
	reportLoc *time.Location,
	log *logger.Logger,
) *AnalyticsUseCase {
	if reportLoc == nil {
		reportLoc = time.UTC
	}
	return &AnalyticsUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		menuRepo:     menuRepo,
		reportLoc:    reportLoc,
		logger:       log,
		now:          time.Now,
	}
}

// Overview assembles the admin analytics page for one period: revenue and
// order series over the window, period-over-period change against the
// preceding window, and customer counters.
func (uc *AnalyticsUseCase) Overview(ctx context.Context, period string) (*AnalyticsOverview, error) {
	window, err := ResolveWindow(period, uc.now())
	if err != nil {
		return nil, err
	}
	previous := window.Previous()

	var (
		orders         []*entities.Order
		previousOrders []*entities.Order
		menuItems      []*entities.MenuItem
		totalCustomers int64
		newCustomers   int64
		returning      int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = uc.orderRepo.ListBetween(gctx, window.From, window.To)
		return err
	})
	g.Go(func() error {
		var err error
		previousOrders, err = uc.orderRepo.ListBetween(gctx, previous.From, previous.To)
		return err
	})
	g.Go(func() error {
		var err error
		menuItems, err = uc.menuRepo.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalCustomers, err = uc.customerRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		newCustomers, err = uc.customerRepo.CountCreatedSince(gctx, window.From)
		return err
	})
	g.Go(func() error {
		var err error
		returning, err = uc.customerRepo.CountReturning(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to load analytics data", "period", period, "error", err)
		return nil, fmt.Errorf("failed to load analytics data: %w", err)
	}

	menuByID := make(map[string]*entities.MenuItem, len(menuItems))
	for _, item := range menuItems {
		menuByID[item.ID] = item
	}

	revenue := TotalRevenue(orders)
	previousRevenue := TotalRevenue(previousOrders)

	overview := &AnalyticsOverview{
		Period: period,
		Window: window,
		Revenue: RevenueReport{
			Total:  revenue,
			Change: PeriodChange(revenue, previousRevenue),
			Daily:  RevenueByDay(orders, window.From, window.To, uc.reportLoc),
		},
		Orders: OrdersReport{
			Total:    len(orders),
			Change:   PeriodChange(float64(len(orders)), float64(len(previousOrders))),
			ByStatus: StatusDistribution(orders),
			ByHour:   HourlyDistribution(orders, uc.reportLoc),
		},
		PopularItems: PopularItems(orders, 10),
		Categories:   CategoryRevenue(orders, menuByID),
		Customers: CustomersReport{
			Total:     totalCustomers,
			New:       newCustomers,
			Returning: returning,
		},
	}

	uc.logger.Info("Analytics overview computed",
		"period", period,
		"orders", len(orders),
		"revenue", revenue)
	return overview, nil
}

// Dashboard assembles the admin landing page: today's and this month's
// totals, the month-over-month change, recent orders and the month's most
// ordered items.
func (uc *AnalyticsUseCase) Dashboard(ctx context.Context) (*DashboardStats, error) {
	now := uc.now().In(uc.reportLoc)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, uc.reportLoc)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, uc.reportLoc)
	startOfLastMonth := startOfMonth.AddDate(0, -1, 0)

	var (
		todayOrders     []*entities.Order
		monthOrders     []*entities.Order
		lastMonthOrders []*entities.Order
		totalCustomers  int64
		recentOrders    []*entities.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todayOrders, err = uc.orderRepo.ListBetween(gctx, startOfDay, now)
		return err
	})
	g.Go(func() error {
		var err error
		monthOrders, err = uc.orderRepo.ListBetween(gctx, startOfMonth, now)
		return err
	})
	g.Go(func() error {
		var err error
		lastMonthOrders, err = uc.orderRepo.ListBetween(gctx, startOfLastMonth, startOfMonth)
		return err
	})
	g.Go(func() error {
		var err error
		totalCustomers, err = uc.customerRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recentOrders, _, err = uc.orderRepo.List(gctx, repositories.ListOrdersQuery{Page: 1, Limit: 10})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to load dashboard data", "error", err)
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	stats := &DashboardStats{
		TotalCustomers: totalCustomers,
		RecentOrders:   recentOrders,
		PopularItems:   PopularItems(monthOrders, 5),
	}

	stats.Today.Orders = len(todayOrders)
	stats.Today.Revenue = TotalRevenue(todayOrders)
	for _, order := range todayOrders {
		switch order.Status {
		case entities.StatusPending:
			stats.Today.Pending++
		case entities.StatusDelivered, entities.StatusReady:
			stats.Today.Completed++
		}
	}

	stats.Month.Orders = len(monthOrders)
	stats.Month.Revenue = TotalRevenue(monthOrders)
	stats.Month.RevenueChange = PeriodChange(stats.Month.Revenue, TotalRevenue(lastMonthOrders))
	stats.Month.OrdersChange = PeriodChange(float64(len(monthOrders)), float64(len(lastMonthOrders)))

	return stats, nil
}
