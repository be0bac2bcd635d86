package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fund metadata is owned by an external back-office process; this service
// only reads it.
type Fund struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Symbol            string          `json:"symbol"`
	AUM               decimal.Decimal `json:"aum"`
	NAVPerShare       decimal.Decimal `json:"nav_per_share"`
	SharesOutstanding decimal.Decimal `json:"shares_outstanding"`
	ReturnYTD         decimal.Decimal `json:"return_ytd"`
	Return1Y          decimal.Decimal `json:"return_1y"`
	SharpeRatio       decimal.Decimal `json:"sharpe_ratio"`
	Volatility        decimal.Decimal `json:"volatility"`
	MaxDrawdown       decimal.Decimal `json:"max_drawdown"`
	InceptionDate     time.Time       `json:"inception_date"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type UserShares struct {
	ID            int             `json:"id"`
	WalletAddress string          `json:"wallet_address"`
	FundID        int             `json:"fund_id"`
	Shares        decimal.Decimal `json:"shares"`
	CostBasis     decimal.Decimal `json:"cost_basis"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type FundPerformancePoint struct {
	ID     int             `json:"id"`
	FundID int             `json:"fund_id"`
	Date   time.Time       `json:"date"`
	NAV    decimal.Decimal `json:"nav"`
	AUM    decimal.Decimal `json:"aum"`
}

type PortfolioAsset struct {
	ID        int             `json:"id"`
	FundID    int             `json:"fund_id"`
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	WeightPct decimal.Decimal `json:"weight_pct"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Value     decimal.Decimal `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	WalletAddress string          `json:"wallet_address"`
	FundID        int             `json:"fund_id"`
	Type          string          `json:"type"` // mint / redeem / transfer
	Shares        decimal.Decimal `json:"shares"`
	NAVPerShare   decimal.Decimal `json:"nav_per_share"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type FundActivity struct {
	ID          int             `json:"id"`
	FundID      int             `json:"fund_id"`
	Type        string          `json:"type"` // rebalance / trade / distribution / note
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

type MarketData struct {
	ID           int             `json:"id"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Change24hPct decimal.Decimal `json:"change_24h_pct"`
	MarketCap    decimal.Decimal `json:"market_cap"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
