package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bachelormess/mess-manager/internal/config"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/store"
	"github.com/bachelormess/mess-manager/internal/utils"
	"github.com/bachelormess/mess-manager/models"
)

// authService is the concrete implementation of AuthService. It handles
// account registration, credential verification against bcrypt digests,
// and the JWT token lifecycle, using a UserRepository for persistence.
type authService struct {
	userRepository store.UserRepository
	ids            *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new member account.
//
// The password is hashed with bcrypt before it ever reaches the repository;
// the plain text is not retained. The account role is always RoleMember and
// the status active: promotion happens only through an admin action.
//
// Returns the persisted user (with a server-assigned ID, digest stripped) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrEmailAlreadyRegistered (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:             a.ids.Generate(),
		Name:           req.Name,
		Email:          store.NormalizeEmail(req.Email),
		Phone:          req.Phone,
		Role:           models.RoleMember,
		Status:         models.UserStatusActive,
		PasswordDigest: string(digest),
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered.Summary(), nil
}

// Login authenticates an existing account.
//
// The failure modes are deliberately collapsed: an unknown email and a wrong
// password both surface as ErrInvalidCredentials so login responses do not
// reveal which emails are registered. A correct password against a
// deactivated account is the one distinct case, ErrAccountDisabled.
//
// On success the account's last-login timestamp is stamped and a signed JWT
// carrying the user's ID and role is returned alongside an identity summary.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.LoginResponse{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("login rejected: email not registered")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(req.Password)); err != nil {
		log.Error().Str("user_id", user.ID).Msg("login rejected: password mismatch")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		log.Error().Str("user_id", user.ID).Msg("login rejected: account disabled")
		return models.LoginResponse{}, ErrAccountDisabled
	}

	if err := a.userRepository.TouchLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the stamp is advisory.
		log.Err(err).Str("user_id", user.ID).Msg("failed to stamp last login")
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token creation failed")
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.LoginResponse{
		Token: token.SignedString,
		User:  user.Summary(),
	}, nil
}

// Identity returns the identity summary behind an authenticated request.
// Clients call it at bootstrap time to confirm a stored token still maps
// to a live account.
func (a *authService) Identity(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("identity lookup ended with error")
		return models.User{}, fmt.Errorf("identity lookup ended with error: %w", err)
	}

	return user.Summary(), nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// issuer and expiry. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
