package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigString(t *testing.T) {
	testCases := []struct {
		name     string
		conf     Config
		expected string
	}{
		{
			name:     "defaults",
			conf:     Config{},
			expected: "host=127.0.0.1 port=5432 dbname=postgres sslmode=prefer",
		},
		{
			name:     "credentials",
			conf:     Config{Host: "db", Port: 6432, User: "bpmon", Password: "secret", DBName: "bpmon", SSLMode: "disable"},
			expected: "host=db port=6432 dbname=bpmon sslmode=disable user=bpmon password=secret",
		},
		{
			name:     "url wins",
			conf:     Config{Host: "db", URL: "postgres://bpmon:secret@db:5432/bpmon"},
			expected: "postgres://bpmon:secret@db:5432/bpmon",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.conf.String())
		})
	}
}

func TestConfigRedacted(t *testing.T) {
	assert.Equal(t, "postgres://bpmon:xxxxx@db:5432/bpmon", Config{URL: "postgres://bpmon:secret@db:5432/bpmon"}.Redacted())
	assert.Equal(t, "db:5432/bpmon", Config{Host: "db", DBName: "bpmon", Password: "secret"}.Redacted())
}
