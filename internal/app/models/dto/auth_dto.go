package dto

// RegisterRequest represents the payload for account registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Priya Sharma"`
	Email    string `json:"email" binding:"required,email" example:"priya@university.edu"`
	Phone    string `json:"phone" binding:"omitempty" example:"+905331234567"`
	Password string `json:"password" binding:"required,min=8" example:"Password123!"`
	Role     string `json:"role" binding:"required,oneof=TPO STUDENT ALUMNI" example:"STUDENT"`
}

// LoginRequest represents the payload for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"priya@university.edu"`
	Password string `json:"password" binding:"required" example:"Password123!"`
}

// RefreshTokenRequest represents the payload for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required" example:"c72c2aea-45f8-4b1a-9f27-6a3cf3dd1234"`
}

// TokenResponse contains the issued token pair
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"604800"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"Priya Sharma"`
	Email    string `json:"email" example:"priya@university.edu"`
	Phone    string `json:"phone,omitempty" example:"+905331234567"`
	RoleType string `json:"role" example:"STUDENT"`
}

// AuthResponse is returned on successful registration or login
type AuthResponse struct {
	User  UserResponse  `json:"user"`
	Token TokenResponse `json:"token"`
}
