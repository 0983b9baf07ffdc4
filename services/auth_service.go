package services

import (
	"errors"

	"github.com/CarlosTarrino98/Gestor-de-negocio/configs"
	"github.com/CarlosTarrino98/Gestor-de-negocio/entity"
	"github.com/CarlosTarrino98/Gestor-de-negocio/repository"
	"github.com/CarlosTarrino98/Gestor-de-negocio/utils"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("email o contraseña incorrectos")

type AuthService struct {
	Repo *repository.UserRepository
	Cfg  *configs.Config
}

func NewAuthService(repo *repository.UserRepository, cfg *configs.Config) *AuthService {
	return &AuthService{Repo: repo, Cfg: cfg}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRes struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (s *AuthService) Login(req *LoginReq) (*LoginRes, error) {
	user, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginRes{Token: token, User: user}, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	return s.Repo.Get(userID)
}
