package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"nitrobrew/internal/domain"
	"nitrobrew/internal/repos"
)

const tokenTTL = 7 * 24 * time.Hour

// RolePolicy assigns a role at signup. Keeping it injectable keeps the
// business rule out of the authentication code itself.
type RolePolicy func(email string) (string, error)

// DefaultRolePolicy mirrors the café's signup rule: customers on gmail.com,
// staff on admin.com, anything else rejected.
func DefaultRolePolicy(email string) (string, error) {
	switch {
	case strings.HasSuffix(email, "@gmail.com"):
		return domain.RoleCustomer, nil
	case strings.HasSuffix(email, "@admin.com"):
		return domain.RoleStaff, nil
	default:
		return "", fmt.Errorf("%w: use @gmail.com for customer or @admin.com for staff", domain.ErrValidation)
	}
}

type tokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	Users  *repos.UserRepo
	Secret []byte
	Role   RolePolicy
}

func NewAuthService(users *repos.UserRepo, secret string, policy RolePolicy) *AuthService {
	if policy == nil {
		policy = DefaultRolePolicy
	}
	return &AuthService{Users: users, Secret: []byte(secret), Role: policy}
}

func (s *AuthService) Signup(email, password string) (*domain.User, error) {
	role, err := s.Role(email)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := domain.User{
		ID:    "u-" + uuid.NewString(),
		Email: email,
		Hash:  string(hash),
		Role:  role,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login verifies credentials and returns the user plus a signed token.
func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, "", domain.ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", domain.ErrBadCredentials
	}
	token, err := s.IssueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// IssueToken signs a time-limited token carrying {userId, email, role}.
func (s *AuthService) IssueToken(u *domain.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// VerifyToken validates a token and returns the session it carries.
func (s *AuthService) VerifyToken(token string) (Session, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return Session{}, domain.ErrBadCredentials
	}
	return Session{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

// UpdateName changes the display name of the token's owner.
func (s *AuthService) UpdateName(userID, name string) (*domain.User, error) {
	if err := s.Users.UpdateName(userID, name); err != nil {
		return nil, err
	}
	return s.Users.ByID(userID)
}
