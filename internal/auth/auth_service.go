package auth

import (
	"context"
	"time"

	autherrors "github.com/Triyambak-CA/client-dashboard/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)

	// CurrentUser validates a bearer token and loads the referenced user.
	// Tokens are stateless: validity is signature + expiry only, plus the
	// user still existing and being active.
	CurrentUser(ctx context.Context, token string) (*User, error)

	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (UserResponse, error)
}

type service struct {
	repo      Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(repo Repository, jwtSecret string, tokenTTL time.Duration) Service {
	return &service{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func verifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return LoginResponse{}, err
	}
	if user == nil || !user.IsActive || !verifyPassword(password, user.PasswordHash) {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.createToken(user.ID, user.Role)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        mapToUserResponse(*user),
	}, nil
}

func (s *service) CurrentUser(ctx context.Context, tokenString string) (*User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherrors.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, autherrors.ErrUserInactive
	}
	return user, nil
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return UserResponse{}, err
	}
	if existing != nil {
		return UserResponse{}, autherrors.ErrEmailExists
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return UserResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = RoleStaff
	}

	user := &User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return UserResponse{}, err
	}
	return mapToUserResponse(*user), nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToUserResponse(u)
	}
	return res, nil
}

func (s *service) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	if user == nil {
		return UserResponse{}, autherrors.ErrUserNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.repo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return UserResponse{}, err
		}
		if existing != nil {
			return UserResponse{}, autherrors.ErrEmailExists
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hashed, err := HashPassword(*req.Password)
		if err != nil {
			return UserResponse{}, err
		}
		user.PasswordHash = hashed
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return UserResponse{}, err
	}
	return mapToUserResponse(*user), nil
}

func (s *service) createToken(userID uuid.UUID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
