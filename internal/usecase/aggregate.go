package usecase

import (
	"sort"
	"time"

	"pizzeria-backend/internal/domain/entities"
)

// Pure aggregation over already-materialized order slices. Keeping the
// groupings in memory rather than in database pipeline stages makes them
// deterministic and testable without a live store.

type DayRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type PopularItem struct {
	MenuItemID   string  `json:"menu_item_id"`
	Name         string  `json:"name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

type HourBucket struct {
	Hour    int     `json:"hour"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type CategorySales struct {
	Category     string  `json:"category"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// RevenueByDay groups orders by calendar day in the given reporting location
// and emits a zero-filled row for every day in [from, to] so charts render a
// continuous series. Grouping in a pinned location keeps day boundaries
// stable regardless of server timezone.
func RevenueByDay(orders []*entities.Order, from, to time.Time, loc *time.Location) []DayRevenue {
	byDay := make(map[string]*DayRevenue)
	for _, order := range orders {
		day := order.CreatedAt.In(loc).Format("2006-01-02")
		row, ok := byDay[day]
		if !ok {
			row = &DayRevenue{Date: day}
			byDay[day] = row
		}
		row.Revenue += order.Total
		row.Orders++
	}

	start := from.In(loc)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	end := to.In(loc)

	var result []DayRevenue
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		if row, ok := byDay[key]; ok {
			result = append(result, *row)
		} else {
			result = append(result, DayRevenue{Date: key})
		}
	}
	return result
}

// PopularItems flattens order items, groups by menu item id, and returns the
// top N by quantity sold. Ties keep first-seen order (stable sort). Grouping
// by id rather than display name avoids conflating distinct items that share
// a name; the name carried out is the first one observed.
func PopularItems(orders []*entities.Order, topN int) []PopularItem {
	index := make(map[string]int)
	var groups []PopularItem

	for _, order := range orders {
		for _, item := range order.Items {
			i, ok := index[item.MenuItemID]
			if !ok {
				i = len(groups)
				index[item.MenuItemID] = i
				groups = append(groups, PopularItem{MenuItemID: item.MenuItemID, Name: item.Name})
			}
			groups[i].QuantitySold += item.Quantity
			groups[i].Revenue += item.UnitPrice * float64(item.Quantity)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].QuantitySold > groups[j].QuantitySold
	})

	if topN > 0 && len(groups) > topN {
		groups = groups[:topN]
	}
	return groups
}

// StatusDistribution counts orders per literal status value. Unrecognized
// statuses are counted under their own key, never dropped.
func StatusDistribution(orders []*entities.Order) map[string]int {
	dist := make(map[string]int)
	for _, order := range orders {
		dist[order.Status]++
	}
	return dist
}

// HourlyDistribution buckets orders into the 24 hours of the day, using the
// same reporting location as RevenueByDay.
func HourlyDistribution(orders []*entities.Order, loc *time.Location) [24]HourBucket {
	var buckets [24]HourBucket
	for i := range buckets {
		buckets[i].Hour = i
	}
	for _, order := range orders {
		hour := order.CreatedAt.In(loc).Hour()
		buckets[hour].Orders++
		buckets[hour].Revenue += order.Total
	}
	return buckets
}

// CategoryRevenue sums quantity and revenue per menu category. Order items
// whose menu item no longer exists are left out of the category totals; they
// still count toward overall revenue elsewhere, so a deleted product is a
// data-quality gap here, not an error.
func CategoryRevenue(orders []*entities.Order, menuItemsByID map[string]*entities.MenuItem) []CategorySales {
	index := make(map[string]int)
	var groups []CategorySales

	for _, order := range orders {
		for _, item := range order.Items {
			menuItem, ok := menuItemsByID[item.MenuItemID]
			if !ok {
				continue
			}
			i, ok := index[menuItem.Category]
			if !ok {
				i = len(groups)
				index[menuItem.Category] = i
				groups = append(groups, CategorySales{Category: menuItem.Category})
			}
			groups[i].QuantitySold += item.Quantity
			groups[i].Revenue += item.UnitPrice * float64(item.Quantity)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue > groups[j].Revenue
	})
	return groups
}

// PeriodChange returns the percent change between two period totals. A zero
// previous period yields zero change, never Inf or NaN.
func PeriodChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// TotalRevenue sums order totals over a window.
func TotalRevenue(orders []*entities.Order) float64 {
	total := 0.0
	for _, order := range orders {
		total += order.Total
	}
	return total
}
