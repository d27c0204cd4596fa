package services

import (
	"errors"
	"time"

	"conduit-api/config"
	"conduit-api/models"
	"conduit-api/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterUser) (*models.AuthResponse, error)
	Login(req models.LoginUser) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateUser(id uint, patch models.UserPatch) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req models.RegisterUser) (*models.AuthResponse, error) {
	// Username and email are both unique at the user boundary
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, models.NewConflict("user with this email already exists")
	}
	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, models.NewConflict("user with this username already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalServer("could not hash password")
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflict("user already exists")
		}
		log.Error().Err(err).Str("username", req.Username).Msg("create user failed")
		return nil, models.NewInternalServer("could not create user")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, models.NewInternalServer("could not sign token")
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) Login(req models.LoginUser) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewUnauthorized("invalid credentials")
		}
		log.Error().Err(err).Msg("fetch user by email failed")
		return nil, models.NewInternalServer("could not fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.NewUnauthorized("invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, models.NewInternalServer("could not sign token")
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound("user not found")
		}
		log.Error().Err(err).Uint("user_id", id).Msg("fetch user failed")
		return nil, models.NewInternalServer("could not fetch user")
	}
	return user, nil
}

func (s *authService) UpdateUser(id uint, patch models.UserPatch) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	mergeUserPatch(user, patch)

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewConflict("username or email already taken")
		}
		log.Error().Err(err).Uint("user_id", id).Msg("update user failed")
		return nil, models.NewInternalServer("could not update user")
	}

	return user, nil
}

// mergeUserPatch applies only the fields present in the patch.
func mergeUserPatch(user *models.User, patch models.UserPatch) {
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Image != nil {
		user.Image = *patch.Image
	}
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(config.JWTSecret)
}
