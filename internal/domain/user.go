package domain

// User es el perfil devuelto por la API de Copperx en /auth/me.
type User struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	OrganizationID string `json:"organizationId"`
	CreatedAt      string `json:"createdAt"`
}

// AuthResponse es la respuesta de la autenticación por OTP.
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// KycStatus describe el estado de verificación KYC de una cuenta.
type KycStatus struct {
	ID        string `json:"id"`
	Status    string `json:"status"` // PENDING, APPROVED, REJECTED
	Type      string `json:"type"`   // INDIVIDUAL, BUSINESS
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
