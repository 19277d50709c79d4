package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gdg-garage/wedding-rsvp/internal/auth"
	"github.com/gdg-garage/wedding-rsvp/internal/config"
	"github.com/gdg-garage/wedding-rsvp/internal/database"
	"github.com/gdg-garage/wedding-rsvp/internal/models"
	"github.com/gdg-garage/wedding-rsvp/internal/notifier"
	"github.com/gdg-garage/wedding-rsvp/internal/rsvp"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendConfirmation(ctx context.Context, c notifier.Confirmation) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type testEnv struct {
	api     humatest.TestAPI
	handler *RSVPHandler
	db      *gorm.DB
	sender  *MockSender
}

const adminPassword = "geheim"

// beforeDeadline and afterDeadline are clock values around the configured
// deadline of 2030-05-01.
var (
	beforeDeadline = time.Date(2030, 4, 1, 12, 0, 0, 0, time.Local)
	afterDeadline  = time.Date(2030, 5, 1, 9, 0, 0, 0, time.Local)
)

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		PublicURL:     "https://rsvp.example.com",
		AdminUsername: "admin",
		AdminPassword: string(hash),
		ContactEmail:  "bruiloft@example.com",
	}
	require.NoError(t, cfg.SetDeadline("2030-05-01"))

	sender := new(MockSender)
	service := rsvp.NewService(db, sender, nil, cfg.ManageURL)
	authHandler := auth.NewAuthHandler(cfg)
	handler := NewRSVPHandler(service, cfg, authHandler)
	handler.now = func() time.Time { return beforeDeadline }

	r := chi.NewRouter()
	api := RegisterRoutes(r, authHandler, handler, false)

	return &testEnv{
		api:     humatest.Wrap(t, api),
		handler: handler,
		db:      db,
		sender:  sender,
	}
}

func adminHeader() string {
	return "Authorization: Basic " + base64.StdEncoding.EncodeToString([]byte("admin:"+adminPassword))
}

func decodeState(t *testing.T, resp *httptest.ResponseRecorder) FormState {
	t.Helper()
	var st FormState
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &st))
	return st
}

type problem struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Message  string `json:"message"`
		Location string `json:"location"`
	} `json:"errors"`
}

func decodeProblem(t *testing.T, resp *httptest.ResponseRecorder) problem {
	t.Helper()
	var p problem
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &p))
	return p
}

func attendingBody(email string) map[string]any {
	return map[string]any{
		"guest_first_name":       "Anna",
		"guest_last_name":        "Bakker",
		"guest_present":          true,
		"guest_present_ceremony": true,
		"guest_present_dinner":   true,
		"guest_email":            email,
		"guest_diet_fish":        true,
	}
}

func countRegistrations(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Registration{}).Count(&n).Error)
	return n
}
