package requestcontext

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithClientIP(t *testing.T) {
	testCases := []struct {
		name     string
		config   WithClientIPConfig
		headers  map[string]string
		expected string
	}{
		{
			name:     "direct",
			expected: "0.0.0.0",
		},
		{
			name:     "trusted header",
			config:   WithClientIPConfig{TrustedHeader: "CF-Connecting-IP"},
			headers:  map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"},
			expected: "203.0.113.7",
		},
		{
			name:     "invalid trusted header falls back",
			config:   WithClientIPConfig{TrustedHeader: "CF-Connecting-IP"},
			headers:  map[string]string{"CF-Connecting-IP": "garbage", "X-Forwarded-For": "198.51.100.1"},
			expected: "198.51.100.1",
		},
		{
			name:     "first forwarded without trusted proxies",
			headers:  map[string]string{"X-Forwarded-For": "1.1.1.1, 10.0.0.2"},
			expected: "1.1.1.1",
		},
		{
			name:     "walks back past trusted proxies",
			config:   WithClientIPConfig{TrustedProxiesIP: []string{"10.0.0.0/8"}},
			headers:  map[string]string{"X-Forwarded-For": "1.1.1.1, 198.51.100.9, 10.0.0.2"},
			expected: "198.51.100.9",
		},
		{
			name:     "all trusted",
			config:   WithClientIPConfig{TrustedProxiesIP: []string{"10.0.0.0/8"}},
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.3, 10.0.0.2"},
			expected: "10.0.0.3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			withClientIP, err := WithClientIP(tc.config)
			require.NoError(t, err)

			app := fiber.New()
			app.Use(New(withClientIP))
			var got string
			app.Get("/", func(c *fiber.Ctx) error {
				got = GetClientIP(c.UserContext())
				return nil
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			_, err = app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestWithClientIPInvalidCIDR(t *testing.T) {
	_, err := WithClientIP(WithClientIPConfig{TrustedProxiesIP: []string{"10.0.0.0/33"}})
	assert.Error(t, err)
}

func TestWithRequestId(t *testing.T) {
	app := fiber.New()
	app.Use(New(WithRequestId()))
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetRequestId(c.UserContext())
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-1")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-1", got)
	assert.Equal(t, "req-1", resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, got, resp.Header.Get(fiber.HeaderXRequestID))
}
