package middleware_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taproom/internal/middleware"
	"taproom/internal/models"
	"taproom/internal/services"
	"taproom/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type staticUsers map[string]string

func (s staticUsers) Create(_ context.Context, user *models.User) error {
	s[user.Username] = user.Password
	return nil
}

func (s staticUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	hash, ok := s[username]
	if !ok {
		return nil, nil
	}
	return &models.User{Username: username, Password: hash}, nil
}

func (s staticUsers) UpdatePassword(_ context.Context, user *models.User) error {
	s[user.Username] = user.Password
	return nil
}

func basic(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	auth := services.NewAuthService(staticUsers{"user1": string(hash)})

	app := fiber.New()
	app.Use(middleware.AuthRequired(auth, zerolog.Nop()))
	app.Get("/secret", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuthRequired(t *testing.T) {
	app := newAuthApp(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid credentials", header: basic("user1", "password"), want: http.StatusOK},
		{name: "wrong password", header: basic("user1", "nope"), want: http.StatusUnauthorized},
		{name: "unknown user", header: basic("someone", "password"), want: http.StatusUnauthorized},
		{name: "no header", want: http.StatusUnauthorized},
		{name: "bearer token", header: "Bearer abc", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secret", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, resp.Header.Get("WWW-Authenticate"), middleware.Realm)
			}
		})
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(zerolog.New(&buf)))
	app.Get("/teapot", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusTeapot) })

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	req.Header.Set(middleware.HeaderRequestID, "rid-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "rid-123", resp.Header.Get(middleware.HeaderRequestID))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "rid-123", line["request_id"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/teapot", line["path"])
	assert.Equal(t, fmt.Sprint(http.StatusTeapot), fmt.Sprint(line["status"]))
	assert.Equal(t, "warn", line["level"])
}

func TestRequestID_Generated(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(middleware.RequestIDFrom(c)) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(middleware.HeaderRequestID))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	app := fiber.New()
	app.Use(middleware.Metrics(metrics.NewHTTPMetrics(reg)))
	app.Get("/beer/:beerId", func(c *fiber.Ctx) error { return c.SendString(c.Params("beerId")) })

	for _, path := range []string{"/beer/1", "/beer/2", "/missing"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	mfs, err := reg.Gather()
	require.NoError(t, err)
	routes := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == "route" {
					routes[pair.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, 2.0, routes["/beer/:beerId"])
	assert.Equal(t, 1.0, routes["unmatched"])
}
