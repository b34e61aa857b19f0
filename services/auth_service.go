package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sigmaquiz/apierror"
	"sigmaquiz/models"
)

type AuthService struct {
	db          *gorm.DB
	jwtSecret   []byte
	tokenExpiry time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{db: db, jwtSecret: []byte(jwtSecret), tokenExpiry: tokenExpiry}
}

type RegisterAdminRequest struct {
	FirstName string   `json:"first_name" binding:"required"`
	LastName  string   `json:"last_name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required"`
	Roles     []string `json:"roles" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// RegisterAdmin bootstraps an administrator account. Only the super-admin
// role is accepted on this path.
func (s *AuthService) RegisterAdmin(req *RegisterAdminRequest) (*models.User, error) {
	if err := models.ValidateRoles(req.Roles); err != nil {
		return nil, err
	}
	if len(req.Roles) != 1 || req.Roles[0] != models.RoleSuperAdmin {
		return nil, apierror.Forbidden("Forbidden: super-admin Only")
	}
	if len(req.Password) < models.MinPasswordLength {
		return nil, apierror.ShortPassword()
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, apierror.BadRequest(fmt.Sprintf("Key (email)=(%s) already exists.", req.Email))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
		Roles:     req.Roles,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credential and issues a signed access token.
func (s *AuthService) Login(req *LoginRequest) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return "", nil, apierror.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, apierror.Unauthorized("Invalid email or password")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// ChangePassword replaces the caller's password after verifying the old one.
func (s *AuthService) ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return apierror.NotFound("User with this id does not exist")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return apierror.BadRequest("Incorrect old password")
	}
	if len(req.NewPassword) < models.MinPasswordLength {
		return apierror.ShortPassword()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&user).Update("password", string(hash)).Error
}

// UserFromToken validates an access token and loads the account it names.
func (s *AuthService) UserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid token subject")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (s *AuthService) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.tokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
