package handlers

import (
	"context"
	"errors"

	"github.com/fund-portal/backend/internal/http/dto"
	"github.com/fund-portal/backend/internal/models"
	"github.com/fund-portal/backend/internal/repositories"
	"github.com/fund-portal/backend/internal/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	maxDisplayNameLen  = 100
	maxProfileImageLen = 512
)

// UserStore is the slice of the user repository the handlers need. Tests
// substitute an in-memory fake.
type UserStore interface {
	FindByAddress(ctx context.Context, address string) (*models.User, error)
	Create(ctx context.Context, address, authMethod string, p repositories.CreateUserParams) (*models.User, error)
	FindOrCreateOnConnect(ctx context.Context, address, authMethod, displayName string) (*models.User, error)
	TouchLogin(ctx context.Context, address string, upd repositories.LoginUpdate) (*models.User, error)
	UpdateDisplayName(ctx context.Context, address, name string) (*models.User, error)
	UpdateProfile(ctx context.Context, address string, upd repositories.ProfileUpdate) (*models.User, error)
	ListAll(ctx context.Context) ([]models.UserSummary, error)
	Delete(ctx context.Context, address string) (*models.User, error)
}

type UserHandler struct {
	store UserStore
	log   *zap.Logger
}

func NewUserHandler(store UserStore, log *zap.Logger) *UserHandler {
	return &UserHandler{store: store, log: log}
}

// GetUser handles GET /user/:address.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	address := c.Params("address")
	if !validation.IsValidEthereumAddress(address) {
		return badRequest(c, "Invalid wallet address")
	}

	user, err := h.store.FindByAddress(c.Context(), address)
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c, "User not found")
	}
	if err != nil {
		return h.internalError(c, "get user", err)
	}
	return c.JSON(user)
}

// Signup handles POST /user/signup and POST /signup.
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if req.WalletAddress == "" || req.AuthMethod == "" {
		return badRequest(c, "walletAddress and authMethod are required")
	}
	if !validation.IsValidEthereumAddress(req.WalletAddress) {
		return badRequest(c, "Invalid wallet address")
	}
	authMethod, ok := models.CanonicalAuthMethod(req.AuthMethod)
	if !ok {
		return badRequest(c, "Invalid auth method")
	}

	params := repositories.CreateUserParams{
		DisplayName: validation.SanitizeString(req.DisplayName, maxDisplayNameLen),
	}
	if req.Email != "" {
		if !validation.IsValidEmail(req.Email) {
			return badRequest(c, "Invalid email")
		}
		params.Email = &req.Email
	}
	if req.PhoneNumber != "" {
		if !validation.IsValidPhoneNumber(req.PhoneNumber) {
			return badRequest(c, "Invalid phone number")
		}
		params.PhoneNumber = &req.PhoneNumber
	}
	if img := validation.SanitizeString(req.ProfileImage, maxProfileImageLen); img != "" {
		params.ProfileImage = &img
	}

	// Pre-check for a friendlier conflict payload. The unique constraint
	// is what actually prevents a duplicate under concurrent signups.
	if existing, err := h.store.FindByAddress(c.Context(), req.WalletAddress); err == nil {
		return conflict(c, existing)
	}

	user, err := h.store.Create(c.Context(), req.WalletAddress, authMethod, params)
	if errors.Is(err, repositories.ErrConflict) {
		existing, ferr := h.store.FindByAddress(c.Context(), req.WalletAddress)
		if ferr != nil {
			return h.internalError(c, "fetch conflicting user", ferr)
		}
		return conflict(c, existing)
	}
	if err != nil {
		return h.internalError(c, "create user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "User created successfully",
		User:    user,
	})
}

// Connect handles POST /user: the idempotent find-or-create fired on every
// page load while a wallet is connected. It never bumps login_count for an
// existing user.
func (h *UserHandler) Connect(c *fiber.Ctx) error {
	var req dto.ConnectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if !validation.IsValidEthereumAddress(req.WalletAddress) {
		return badRequest(c, "Invalid wallet address")
	}

	authMethod := models.AuthMethodWallet
	if req.AuthMethod != "" {
		m, ok := models.CanonicalAuthMethod(req.AuthMethod)
		if !ok {
			return badRequest(c, "Invalid auth method")
		}
		authMethod = m
	}

	displayName := validation.SanitizeString(req.DisplayName, maxDisplayNameLen)

	user, err := h.store.FindOrCreateOnConnect(c.Context(), req.WalletAddress, authMethod, displayName)
	if err != nil {
		return h.internalError(c, "find or create user", err)
	}
	return c.JSON(user)
}

// Login handles POST /user/login: bumps login bookkeeping and overwrites
// any optional field supplied non-empty.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if req.WalletAddress == "" {
		return badRequest(c, "walletAddress is required")
	}
	if !validation.IsValidEthereumAddress(req.WalletAddress) {
		return badRequest(c, "Invalid wallet address")
	}

	var upd repositories.LoginUpdate
	if req.AuthMethod != "" {
		m, ok := models.CanonicalAuthMethod(req.AuthMethod)
		if !ok {
			return badRequest(c, "Invalid auth method")
		}
		upd.AuthMethod = &m
	}
	if req.Email != "" {
		if !validation.IsValidEmail(req.Email) {
			return badRequest(c, "Invalid email")
		}
		upd.Email = &req.Email
	}
	if req.PhoneNumber != "" {
		if !validation.IsValidPhoneNumber(req.PhoneNumber) {
			return badRequest(c, "Invalid phone number")
		}
		upd.PhoneNumber = &req.PhoneNumber
	}
	if name := validation.SanitizeString(req.DisplayName, maxDisplayNameLen); name != "" {
		upd.DisplayName = &name
	}
	if img := validation.SanitizeString(req.ProfileImage, maxProfileImageLen); img != "" {
		upd.ProfileImage = &img
	}

	user, err := h.store.TouchLogin(c.Context(), req.WalletAddress, upd)
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c, "User not found")
	}
	if err != nil {
		return h.internalError(c, "touch login", err)
	}

	return c.JSON(dto.MessageResponse{Message: "Login recorded", User: user})
}

// UpdateName handles PATCH /user/:address/name.
func (h *UserHandler) UpdateName(c *fiber.Ctx) error {
	address := c.Params("address")
	if !validation.IsValidEthereumAddress(address) {
		return badRequest(c, "Invalid wallet address")
	}

	var req dto.UpdateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	name := validation.SanitizeString(req.DisplayName, maxDisplayNameLen)
	if name == "" {
		return badRequest(c, "displayName is required")
	}

	user, err := h.store.UpdateDisplayName(c.Context(), address, name)
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c, "User not found")
	}
	if err != nil {
		return h.internalError(c, "update display name", err)
	}
	return c.JSON(user)
}

// UpdateProfile handles PATCH /user/:address/profile. Absent fields are
// untouched; present-but-empty fields are cleared.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	address := c.Params("address")
	if !validation.IsValidEthereumAddress(address) {
		return badRequest(c, "Invalid wallet address")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	var upd repositories.ProfileUpdate
	if req.Email != nil {
		email := validation.SanitizeString(*req.Email, 254)
		if email != "" && !validation.IsValidEmail(email) {
			return badRequest(c, "Invalid email")
		}
		upd.Email = &email
	}
	if req.DisplayName != nil {
		name := validation.SanitizeString(*req.DisplayName, maxDisplayNameLen)
		upd.DisplayName = &name
	}
	if req.ProfileImage != nil {
		img := validation.SanitizeString(*req.ProfileImage, maxProfileImageLen)
		upd.ProfileImage = &img
	}

	if upd.Empty() {
		return badRequest(c, "At least one field is required")
	}

	user, err := h.store.UpdateProfile(c.Context(), address, upd)
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c, "User not found")
	}
	if err != nil {
		return h.internalError(c, "update profile", err)
	}
	return c.JSON(user)
}

// ListUsers handles GET /users. The projection omits email and phone.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.store.ListAll(c.Context())
	if err != nil {
		return h.internalError(c, "list users", err)
	}
	return c.JSON(users)
}

// DeleteUser handles DELETE /user/:address.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	address := c.Params("address")
	if !validation.IsValidEthereumAddress(address) {
		return badRequest(c, "Invalid wallet address")
	}

	user, err := h.store.Delete(c.Context(), address)
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c, "User not found")
	}
	if err != nil {
		return h.internalError(c, "delete user", err)
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted", User: user})
}

func (h *UserHandler) internalError(c *fiber.Ctx, op string, err error) error {
	return internalError(c, h.log, op, err)
}
