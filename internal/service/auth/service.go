package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schoolhub/attendance-backend-go/internal/domain/auth"
	"github.com/schoolhub/attendance-backend-go/internal/domain/staff"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/jwt"
	"github.com/schoolhub/attendance-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	staff.StaffRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	staffRepo staff.StaffRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		StaffRepository: staffRepo,
		jwtService:      jwtService,
		googleService:   googleService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	member, err := a.StaffRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	if member.PasswordHash == nil {
		// Google-only account, no password set.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*member.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(member)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	staffID, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	member, err := a.StaffRepository.Get(ctx, staffID)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}
	if !member.IsActive {
		return auth.TokenResponse{}, staff.ErrStaffInactive
	}

	// Rotate: the presented refresh token is single use.
	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(member)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.TokenResponse, error) {
	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrGoogleEmailNotVerified
	}

	member, err := a.StaffRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get staff member: %w", err)
	}

	return a.issueTokens(member)
}

func (a *AuthServiceImpl) issueTokens(member staff.StaffMember) (auth.TokenResponse, error) {
	if !member.IsActive {
		return auth.TokenResponse{}, staff.ErrStaffInactive
	}

	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(
		member.ID, member.Email, member.SchoolID, member.Role, member.CustomRoleID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(member.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}
