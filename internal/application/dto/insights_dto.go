package dto

import "github.com/shopspring/decimal"

// InsightsRequest indicadores consolidados enviados pelo painel para a
// análise gerada por IA. Os valores chegam prontos; o backend só monta o
// prompt e repassa ao modelo.
type InsightsRequest struct {
	PeriodLabel     string          `json:"periodLabel"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	NetProfit       decimal.Decimal `json:"netProfit"`
	SalesCount      int64           `json:"salesCount"`
	ServiceCount    int64           `json:"serviceCount"`
	AvgTicket       decimal.Decimal `json:"avgTicket"`
	TopProducts     []string        `json:"topProducts"`
	TopServices     []string        `json:"topServices"`
	StockAlerts     []string        `json:"stockAlerts"`
	PendingExpenses decimal.Decimal `json:"pendingExpenses"`
}

// InsightsResponse análise textual devolvida pelo modelo.
type InsightsResponse struct {
	Insights string `json:"insights"`
	Model    string `json:"model"`
}
