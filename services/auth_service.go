package services

import (
	"errors"
	"log"
	"time"

	"github.com/rdbo/nutrinow/models"
	"github.com/rdbo/nutrinow/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Name      string
	Birthdate string // YYYY-MM-DD
	Email     string
	Password  string
	Gender    string
	Weight    float64
}

func (s *AuthService) Register(in RegisterInput) error {
	if !utils.CheckName(in.Name) {
		return ErrInvalidName
	}
	if !utils.CheckEmail(in.Email) {
		return ErrInvalidEmail
	}
	if !utils.CheckGender(in.Gender) {
		return ErrInvalidGender
	}
	if !utils.CheckWeight(in.Weight) {
		return ErrInvalidWeight
	}
	birthdate, err := time.Parse("2006-01-02", in.Birthdate)
	if err != nil || !utils.CheckBirthdate(birthdate) {
		return ErrInvalidBirthdate
	}

	var count int64
	if err := s.db.Model(&models.UserAccount{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return err
	}

	user := models.UserAccount{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Gender:       in.Gender,
		Weight:       in.Weight,
		Birthdate:    birthdate,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// Login verifies credentials and opens a session valid for one year.
func (s *AuthService) Login(email, password string) (string, error) {
	var user models.UserAccount
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAuthFailed
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrAuthFailed
	}

	session := models.Session{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		ExpiryDate: time.Now().AddDate(1, 0, 0),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", err
	}
	return session.ID, nil
}

func (s *AuthService) Logout(sessionID string) error {
	return s.db.Delete(&models.Session{}, "id = ?", sessionID).Error
}

// SessionUserID resolves a session token to the owning user. Expired
// sessions are removed on sight and treated the same as missing ones.
func (s *AuthService) SessionUserID(sessionID string) (uint, error) {
	if sessionID == "" {
		return 0, ErrNotLoggedIn
	}

	var session models.Session
	if err := s.db.First(&session, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSessionInvalid
		}
		return 0, err
	}

	if !session.ExpiryDate.After(time.Now()) {
		s.db.Delete(&models.Session{}, "id = ?", sessionID)
		return 0, ErrSessionInvalid
	}
	return session.UserID, nil
}

func (s *AuthService) GetUser(userID uint) (*models.UserAccount, error) {
	var user models.UserAccount
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SweepExpiredSessions removes sessions past their expiry date.
func (s *AuthService) SweepExpiredSessions() (int64, error) {
	result := s.db.Delete(&models.Session{}, "expiry_date <= ?", time.Now())
	return result.RowsAffected, result.Error
}

// StartSessionSweeper runs the expiry sweep on every tick until stop closes.
// Correctness does not depend on it; lookups already reject expired sessions.
func (s *AuthService) StartSessionSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := s.SweepExpiredSessions()
				if err != nil {
					log.Printf("session sweep failed: %v", err)
				} else if n > 0 {
					log.Printf("session sweep removed %d expired sessions", n)
				}
			case <-stop:
				return
			}
		}
	}()
}
