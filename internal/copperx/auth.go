package copperx

import (
	"context"

	"payout-bot/internal/domain"
)

// AuthService expone las operaciones de autenticación por OTP de la API.
type AuthService struct {
	client *Client
}

// NewAuthService crea una instancia de AuthService sobre el cliente dado.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// RequestOTP pide el envío de un código OTP al correo indicado.
func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	var resp struct {
		Success bool `json:"success"`
	}
	return s.client.Post(ctx, "", "/auth/email-otp/request", body, &resp)
}

// AuthenticateOTP canjea email y OTP por los tokens de sesión.
func (s *AuthService) AuthenticateOTP(ctx context.Context, email, otp string) (domain.AuthResponse, error) {
	body := map[string]string{"email": email, "otp": otp}
	var resp domain.AuthResponse
	if err := s.client.Post(ctx, "", "/auth/email-otp/authenticate", body, &resp); err != nil {
		return domain.AuthResponse{}, err
	}
	return resp, nil
}

// GetUserProfile obtiene el perfil del usuario autenticado.
func (s *AuthService) GetUserProfile(ctx context.Context, token string) (domain.User, error) {
	var user domain.User
	if err := s.client.Get(ctx, token, "/auth/me", &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetKycStatus lista los estados KYC de la cuenta autenticada.
func (s *AuthService) GetKycStatus(ctx context.Context, token string) ([]domain.KycStatus, error) {
	var statuses []domain.KycStatus
	if err := s.client.Get(ctx, token, "/kycs", &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}
