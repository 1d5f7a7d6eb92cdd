package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/password"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
	postgresql.JWTRepository
	withTx func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		JWTRepository:      jwtRepository,
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Signup implements auth.AuthService.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var tokenResponse auth.TokenResponse
	err = a.withTx(ctx, func(txCtx context.Context) error {
		created, err := a.UserRepository.Create(txCtx, user.User{
			LoginID:      req.LoginID,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         user.RoleAdmin,
			IsActive:     true,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				if isLoginIDConstraint(pgErr) {
					return user.ErrLoginIDExists
				}
				return user.ErrEmailExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		tokenResponse, err = a.issueTokens(txCtx, created, nil)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.resolveIdentity(ctx, req.Identifier)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	ok, err := password.Verify(req.Password, userData.PasswordHash)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// A deactivated account is indistinguishable from a bad password.
	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	employeeID, err := a.employeeIDFor(ctx, userData.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var tokenResponse auth.TokenResponse
	err = a.withTx(ctx, func(txCtx context.Context) error {
		tokenResponse, err = a.issueTokens(txCtx, userData, employeeID)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	if err := a.JWTRepository.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	token, err := jwtauth.VerifyToken(a.Service.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsActive {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	employeeID, err := a.employeeIDFor(ctx, userData.ID)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.LoginID, userData.Email, employeeID, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.MeResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.MeResponse{}, auth.ErrUserNotFound
		}
		return auth.MeResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	employeeID, err := a.employeeIDFor(ctx, userData.ID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.MeResponse{
		UserID:     userData.ID,
		LoginID:    userData.LoginID,
		Email:      userData.Email,
		Role:       string(userData.Role),
		EmployeeID: employeeID,
	}, nil
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	ok, err := password.Verify(req.CurrentPassword, userData.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return auth.ErrInvalidCredentials
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.UserRepository.UpdatePassword(ctx, userData.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// resolveIdentity looks the identifier up as a login ID first, then as
// an email. Both misses collapse into ErrInvalidCredentials.
func (a *AuthServiceImpl) resolveIdentity(ctx context.Context, identifier string) (user.User, error) {
	userData, err := a.UserRepository.GetByLoginID(ctx, identifier)
	if err == nil {
		return userData, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, fmt.Errorf("failed to get user by login ID: %w", err)
	}

	userData, err = a.UserRepository.GetByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, auth.ErrInvalidCredentials
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return userData, nil
}

func (a *AuthServiceImpl) employeeIDFor(ctx context.Context, userID string) (*string, error) {
	profile, err := a.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee profile: %w", err)
	}
	return &profile.ID, nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, employeeID *string) (auth.TokenResponse, error) {
	var response auth.TokenResponse
	var err error

	response.AccessToken, response.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.LoginID, userData.Email, employeeID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	response.RefreshToken, response.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := a.CreateRefreshToken(ctx, userData.ID, response.RefreshToken, response.RefreshTokenExpiresIn); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return response, nil
}

func isLoginIDConstraint(pgErr *pgconn.PgError) bool {
	return pgErr.ConstraintName == "users_login_id_key"
}
