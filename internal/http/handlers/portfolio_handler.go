package handlers

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/fund-portal/backend/internal/models"
	"github.com/fund-portal/backend/internal/repositories"
	"github.com/fund-portal/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	maxFundID        = math.MaxInt32
	defaultPerfDays  = 30
	defaultListLimit = 50
)

// PortfolioStore is the read-only slice of the portfolio repository the
// handlers need.
type PortfolioStore interface {
	GetFund(ctx context.Context, fundID int) (*models.Fund, error)
	GetUserShares(ctx context.Context, wallet string) (*models.UserShares, error)
	GetFundPerformance(ctx context.Context, fundID, days int) ([]models.FundPerformancePoint, error)
	GetPortfolioAssets(ctx context.Context, fundID int) ([]models.PortfolioAsset, error)
	GetTransactions(ctx context.Context, wallet string, limit int) ([]models.Transaction, error)
	GetFundActivities(ctx context.Context, fundID, limit int) ([]models.FundActivity, error)
	GetMarketData(ctx context.Context) ([]models.MarketData, error)
}

type PortfolioHandler struct {
	store PortfolioStore
	log   *zap.Logger
}

func NewPortfolioHandler(store PortfolioStore, log *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{store: store, log: log}
}

// GetFund handles GET /fund/:id.
func (h *PortfolioHandler) GetFund(c *fiber.Ctx) error {
	fundID, ok := parseFundID(c)
	if !ok {
		return badRequest(c, "Invalid fund id")
	}

	fund, err := h.store.GetFund(c.Context(), fundID)
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c, "Fund not found")
	}
	if err != nil {
		return h.internalError(c, "get fund", err)
	}
	return c.JSON(fund)
}

// GetUserShares handles GET /user-shares/:wallet.
func (h *PortfolioHandler) GetUserShares(c *fiber.Ctx) error {
	wallet := c.Params("wallet")
	if !validation.IsValidEthereumAddress(wallet) {
		return badRequest(c, "Invalid wallet address")
	}

	shares, err := h.store.GetUserShares(c.Context(), wallet)
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c, "No shares found")
	}
	if err != nil {
		return h.internalError(c, "get user shares", err)
	}
	return c.JSON(shares)
}

// GetFundPerformance handles GET /fund-performance/:id?days=N. Points come
// back in ascending date order covering the most recent N days.
func (h *PortfolioHandler) GetFundPerformance(c *fiber.Ctx) error {
	fundID, ok := parseFundID(c)
	if !ok {
		return badRequest(c, "Invalid fund id")
	}

	days, ok := parseBoundedQuery(c, "days", defaultPerfDays, repositories.MaxPerformanceDays)
	if !ok {
		return badRequest(c, "Invalid days parameter")
	}

	points, err := h.store.GetFundPerformance(c.Context(), fundID, days)
	if err != nil {
		return h.internalError(c, "get fund performance", err)
	}
	return c.JSON(points)
}

// GetPortfolioAssets handles GET /portfolio-assets/:id.
func (h *PortfolioHandler) GetPortfolioAssets(c *fiber.Ctx) error {
	fundID, ok := parseFundID(c)
	if !ok {
		return badRequest(c, "Invalid fund id")
	}

	assets, err := h.store.GetPortfolioAssets(c.Context(), fundID)
	if err != nil {
		return h.internalError(c, "get portfolio assets", err)
	}
	return c.JSON(assets)
}

// GetTransactions handles GET /transactions/:wallet?limit=N.
func (h *PortfolioHandler) GetTransactions(c *fiber.Ctx) error {
	wallet := c.Params("wallet")
	if !validation.IsValidEthereumAddress(wallet) {
		return badRequest(c, "Invalid wallet address")
	}

	limit, ok := parseBoundedQuery(c, "limit", defaultListLimit, repositories.MaxListLimit)
	if !ok {
		return badRequest(c, "Invalid limit parameter")
	}

	txs, err := h.store.GetTransactions(c.Context(), wallet, limit)
	if err != nil {
		return h.internalError(c, "get transactions", err)
	}
	return c.JSON(txs)
}

// GetFundActivities handles GET /fund-activities/:id?limit=N.
func (h *PortfolioHandler) GetFundActivities(c *fiber.Ctx) error {
	fundID, ok := parseFundID(c)
	if !ok {
		return badRequest(c, "Invalid fund id")
	}

	limit, ok := parseBoundedQuery(c, "limit", defaultListLimit, repositories.MaxListLimit)
	if !ok {
		return badRequest(c, "Invalid limit parameter")
	}

	activities, err := h.store.GetFundActivities(c.Context(), fundID, limit)
	if err != nil {
		return h.internalError(c, "get fund activities", err)
	}
	return c.JSON(activities)
}

// GetMarketData handles GET /market-data.
func (h *PortfolioHandler) GetMarketData(c *fiber.Ctx) error {
	data, err := h.store.GetMarketData(c.Context())
	if err != nil {
		return h.internalError(c, "get market data", err)
	}
	return c.JSON(data)
}

func parseFundID(c *fiber.Ctx) (int, bool) {
	s := c.Params("id")
	if !validation.IsValidPositiveInteger(s, maxFundID) {
		return 0, false
	}
	id, _ := strconv.Atoi(s)
	return id, true
}

// parseBoundedQuery reads an optional positive-integer query parameter.
// Out-of-range or non-numeric values are rejected before any query runs.
func parseBoundedQuery(c *fiber.Ctx, name string, def, max int) (int, bool) {
	s := c.Query(name)
	if s == "" {
		return def, true
	}
	if !validation.IsValidPositiveInteger(s, max) {
		return 0, false
	}
	v, _ := strconv.Atoi(s)
	return v, true
}

func (h *PortfolioHandler) internalError(c *fiber.Ctx, op string, err error) error {
	return internalError(c, h.log, op, err)
}
