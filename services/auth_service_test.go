package services

import (
	"errors"
	"testing"
	"time"

	"github.com/rdbo/nutrinow/models"

	"github.com/google/uuid"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:      "Alice Example",
		Birthdate: "1993-04-12",
		Email:     "alice@example.com",
		Password:  "secret123",
		Gender:    "F",
		Weight:    62.5,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if err := svc.Register(validRegisterInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	var user models.UserAccount
	if err := db.Where("email = ?", "alice@example.com").First(&user).Error; err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if user.Birthdate.Format("2006-01-02") != "1993-04-12" {
		t.Errorf("unexpected birthdate: %v", user.Birthdate)
	}

	sessionID, err := svc.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sessionID == "" {
		t.Fatal("login returned an empty session token")
	}
	if _, err := uuid.Parse(sessionID); err != nil {
		t.Errorf("session token is not a UUID: %v", err)
	}

	userID, err := svc.SessionUserID(sessionID)
	if err != nil {
		t.Fatalf("session lookup failed: %v", err)
	}
	if userID != user.ID {
		t.Errorf("session resolved to user %d, want %d", userID, user.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
		want   error
	}{
		{"empty name", func(in *RegisterInput) { in.Name = "" }, ErrInvalidName},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
		{"bad gender", func(in *RegisterInput) { in.Gender = "X" }, ErrInvalidGender},
		{"zero weight", func(in *RegisterInput) { in.Weight = 0 }, ErrInvalidWeight},
		{"future birthdate", func(in *RegisterInput) { in.Birthdate = "2993-01-01" }, ErrInvalidBirthdate},
		{"malformed birthdate", func(in *RegisterInput) { in.Birthdate = "12/04/1993" }, ErrInvalidBirthdate},
	}
	for _, tc := range cases {
		in := validRegisterInput()
		tc.mutate(&in)
		if err := svc.Register(in); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	var count int64
	db.Model(&models.UserAccount{}).Count(&count)
	if count != 0 {
		t.Errorf("invalid registrations created %d users", count)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if err := svc.Register(validRegisterInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := svc.Register(validRegisterInput()); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if err := svc.Register(validRegisterInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Login("alice@example.com", "wrong"); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("expected ErrAuthFailed for wrong password, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("expected ErrAuthFailed for unknown email, got %v", err)
	}
}

func TestSessionLookupErrors(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.SessionUserID(""); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn for empty token, got %v", err)
	}
	if _, err := svc.SessionUserID(uuid.NewString()); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("expected ErrSessionInvalid for unknown token, got %v", err)
	}
}

func TestExpiredSessionIsRejectedAndRemoved(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com", "F", 30)

	session := models.Session{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		ExpiryDate: time.Now().Add(-time.Hour),
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	svc := NewAuthService(db)
	if _, err := svc.SessionUserID(session.ID); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid for expired session, got %v", err)
	}

	var count int64
	db.Model(&models.Session{}).Where("id = ?", session.ID).Count(&count)
	if count != 0 {
		t.Error("expired session row must be removed on lookup")
	}
}

func TestLogout(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if err := svc.Register(validRegisterInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	sessionID, err := svc.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(sessionID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.SessionUserID(sessionID); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("expected ErrSessionInvalid after logout, got %v", err)
	}
}

func TestSweepExpiredSessions(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com", "F", 30)

	expired := models.Session{ID: uuid.NewString(), UserID: user.ID, ExpiryDate: time.Now().Add(-time.Minute)}
	live := models.Session{ID: uuid.NewString(), UserID: user.ID, ExpiryDate: time.Now().Add(time.Hour)}
	for _, s := range []models.Session{expired, live} {
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("failed to create session: %v", err)
		}
	}

	svc := NewAuthService(db)
	removed, err := svc.SweepExpiredSessions()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed session, got %d", removed)
	}

	if _, err := svc.SessionUserID(live.ID); err != nil {
		t.Errorf("live session must survive the sweep: %v", err)
	}
}

func TestGetUser(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com", "F", 30)

	svc := NewAuthService(db)
	got, err := svc.GetUser(user.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if got.Email != user.Email {
		t.Errorf("expected email %q, got %q", user.Email, got.Email)
	}

	if _, err := svc.GetUser(999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
