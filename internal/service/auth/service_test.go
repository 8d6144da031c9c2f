package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pemda-presensi/presensi-backend-go/internal/domain/auth"
	"github.com/pemda-presensi/presensi-backend-go/internal/domain/pegawai"
	"github.com/pemda-presensi/presensi-backend-go/internal/pkg/jwt"
)

const (
	testNIP      = "198001012005011001"
	testPassword = "rahasia123"
)

type stubPegawaiRepo struct {
	cred pegawai.Credential
}

func (s *stubPegawaiRepo) List(_ context.Context, _ pegawai.Filter) ([]pegawai.Pegawai, error) {
	return nil, nil
}

func (s *stubPegawaiRepo) GetByID(_ context.Context, id int64) (pegawai.Pegawai, error) {
	if id != s.cred.IDPegawai {
		return pegawai.Pegawai{}, pegawai.ErrPegawaiNotFound
	}
	return pegawai.Pegawai{
		IDPegawai:   s.cred.IDPegawai,
		NIPPegawai:  s.cred.NIPPegawai,
		NamaPegawai: s.cred.NamaPegawai,
	}, nil
}

func (s *stubPegawaiRepo) GetCredentialByNIP(_ context.Context, nip string) (pegawai.Credential, error) {
	if nip != s.cred.NIPPegawai {
		return pegawai.Credential{}, pegawai.ErrPegawaiNotFound
	}
	return s.cred, nil
}

func newTestService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubPegawaiRepo{cred: pegawai.Credential{
		IDPegawai:    1,
		NIPPegawai:   testNIP,
		NamaPegawai:  "Andi",
		PasswordHash: string(hash),
	}}
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(repo, jwtService), jwtService
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{NIP: testNIP, Password: testPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(1), resp.IDPegawai)
	assert.Equal(t, "Andi", resp.NamaPegawai)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{NIP: testNIP, Password: "salah"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownNIP(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{NIP: "199901012005011001", Password: testPassword})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InvalidNIPFormat(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{NIP: "12345", Password: testPassword})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_Success(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{NIP: testNIP, Password: testPassword})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefresh_RevokedToken(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{NIP: testNIP, Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{NIP: testNIP, Password: testPassword})
	require.NoError(t, err)

	// An access token is not a refresh token.
	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}
