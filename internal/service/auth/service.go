package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/auth"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	pegawaiRepo pegawai.PegawaiRepository
	jwtService  jwt.Service
}

func NewAuthService(pegawaiRepo pegawai.PegawaiRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		pegawaiRepo: pegawaiRepo,
		jwtService:  jwtService,
	}
}

// Login implements auth.AuthService. A wrong NIP and a wrong password both
// report the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	cred, err := s.pegawaiRepo.GetCredentialByNIP(ctx, req.NIP)
	if err != nil {
		if errors.Is(err, pegawai.ErrPegawaiNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("fetch credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(cred.IDPegawai, cred.NIPPegawai, cred.NamaPegawai)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(cred.IDPegawai)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		IDPegawai:    cred.IDPegawai,
		NIPPegawai:   cred.NIPPegawai,
		NamaPegawai:  cred.NamaPegawai,
	}, nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	idPegawai, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrTokenExpired
	}

	emp, err := s.pegawaiRepo.GetByID(ctx, idPegawai)
	if err != nil {
		if errors.Is(err, pegawai.ErrPegawaiNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidCredentials
		}
		return auth.RefreshResponse{}, fmt.Errorf("fetch pegawai: %w", err)
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.IDPegawai, emp.NIPPegawai, emp.NamaPegawai)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}
