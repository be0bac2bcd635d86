package repositories

import (
	"context"
	"errors"

	"github.com/fund-portal/backend/internal/models"
	"github.com/fund-portal/backend/internal/validation"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Bounds on caller-supplied query parameters. Handlers validate against
// these before any repository call.
const (
	MaxPerformanceDays = 3650
	MaxListLimit       = 1000
)

// PortfolioRepo serves the read-only fund tables. Nothing here writes;
// funds, shares and activity rows are maintained by an external back-office
// process.
type PortfolioRepo struct {
	pool *pgxpool.Pool

	// demoFallback serves the first row of user_shares/transactions when
	// the queried wallet has none. Demo behavior, off in production.
	demoFallback bool
}

func NewPortfolioRepo(pool *pgxpool.Pool, demoFallback bool) *PortfolioRepo {
	return &PortfolioRepo{pool: pool, demoFallback: demoFallback}
}

func (r *PortfolioRepo) GetFund(ctx context.Context, fundID int) (*models.Fund, error) {
	var f models.Fund
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, symbol, aum, nav_per_share, shares_outstanding,
		       return_ytd, return_1y, sharpe_ratio, volatility, max_drawdown,
		       inception_date, updated_at
		FROM funds WHERE id = $1
	`, fundID).Scan(
		&f.ID, &f.Name, &f.Symbol, &f.AUM, &f.NAVPerShare, &f.SharesOutstanding,
		&f.ReturnYTD, &f.Return1Y, &f.SharpeRatio, &f.Volatility, &f.MaxDrawdown,
		&f.InceptionDate, &f.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &f, nil
}

func (r *PortfolioRepo) GetUserShares(ctx context.Context, wallet string) (*models.UserShares, error) {
	wallet = validation.NormalizeAddress(wallet)

	s, err := r.scanUserShares(ctx, `
		SELECT id, wallet_address, fund_id, shares, cost_basis, updated_at
		FROM user_shares WHERE wallet_address = $1
		ORDER BY id LIMIT 1
	`, wallet)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, ErrNotFound) || !r.demoFallback {
		return nil, err
	}
	return r.scanUserShares(ctx, `
		SELECT id, wallet_address, fund_id, shares, cost_basis, updated_at
		FROM user_shares ORDER BY id LIMIT 1
	`)
}

func (r *PortfolioRepo) scanUserShares(ctx context.Context, query string, args ...any) (*models.UserShares, error) {
	var s models.UserShares
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.WalletAddress, &s.FundID, &s.Shares, &s.CostBasis, &s.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

// GetFundPerformance returns up to days most recent points in ascending
// date order. Rows are fetched newest-first and reversed so the limit
// applies to the most recent window.
func (r *PortfolioRepo) GetFundPerformance(ctx context.Context, fundID, days int) ([]models.FundPerformancePoint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, fund_id, date, nav, aum
		FROM fund_performance WHERE fund_id = $1
		ORDER BY date DESC LIMIT $2
	`, fundID, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []models.FundPerformancePoint{}
	for rows.Next() {
		var p models.FundPerformancePoint
		if err := rows.Scan(&p.ID, &p.FundID, &p.Date, &p.NAV, &p.AUM); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}

func (r *PortfolioRepo) GetPortfolioAssets(ctx context.Context, fundID int) ([]models.PortfolioAsset, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, fund_id, symbol, name, weight_pct, quantity, price, value, updated_at
		FROM portfolio_assets WHERE fund_id = $1
		ORDER BY weight_pct DESC
	`, fundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []models.PortfolioAsset{}
	for rows.Next() {
		var a models.PortfolioAsset
		if err := rows.Scan(&a.ID, &a.FundID, &a.Symbol, &a.Name, &a.WeightPct, &a.Quantity, &a.Price, &a.Value, &a.UpdatedAt); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *PortfolioRepo) GetTransactions(ctx context.Context, wallet string, limit int) ([]models.Transaction, error) {
	wallet = validation.NormalizeAddress(wallet)

	txs, err := r.queryTransactions(ctx, `
		SELECT id, wallet_address, fund_id, type, shares, nav_per_share, amount, status, created_at
		FROM transactions WHERE wallet_address = $1
		ORDER BY created_at DESC LIMIT $2
	`, wallet, limit)
	if err != nil {
		return nil, err
	}
	if len(txs) > 0 || !r.demoFallback {
		return txs, nil
	}
	return r.queryTransactions(ctx, `
		SELECT id, wallet_address, fund_id, type, shares, nav_per_share, amount, status, created_at
		FROM transactions
		ORDER BY created_at DESC LIMIT $1
	`, limit)
}

func (r *PortfolioRepo) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.WalletAddress, &t.FundID, &t.Type, &t.Shares, &t.NAVPerShare, &t.Amount, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (r *PortfolioRepo) GetFundActivities(ctx context.Context, fundID, limit int) ([]models.FundActivity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, fund_id, type, description, amount, created_at
		FROM fund_activities WHERE fund_id = $1
		ORDER BY created_at DESC LIMIT $2
	`, fundID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []models.FundActivity{}
	for rows.Next() {
		var a models.FundActivity
		if err := rows.Scan(&a.ID, &a.FundID, &a.Type, &a.Description, &a.Amount, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (r *PortfolioRepo) GetMarketData(ctx context.Context) ([]models.MarketData, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, symbol, name, price, change_24h_pct, market_cap, updated_at
		FROM market_data ORDER BY symbol
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	data := []models.MarketData{}
	for rows.Next() {
		var m models.MarketData
		if err := rows.Scan(&m.ID, &m.Symbol, &m.Name, &m.Price, &m.Change24hPct, &m.MarketCap, &m.UpdatedAt); err != nil {
			return nil, err
		}
		data = append(data, m)
	}
	return data, rows.Err()
}
