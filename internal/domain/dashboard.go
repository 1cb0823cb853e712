package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dashboard aggregates. Growth figures are percentages against the previous period.
type DashboardStats struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalOrders       int64           `json:"totalOrders"`
	TotalCustomers    int64           `json:"totalCustomers"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	RevenueGrowth     float64         `json:"revenueGrowth"`
	OrderGrowth       float64         `json:"orderGrowth"`
	CustomerGrowth    float64         `json:"customerGrowth"`
}

type RevenueData struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}

type TopProduct struct {
	Product   Product         `json:"product"`
	TotalSold int64           `json:"totalSold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type CustomerInsight struct {
	User          User            `json:"user"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	LastOrderDate time.Time       `json:"lastOrderDate"`
}
