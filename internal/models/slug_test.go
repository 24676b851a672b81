package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Database", "database"},
		{"spaces", "Web Frontend", "web_frontend"},
		{"hyphen", "Auth-Provider", "auth_provider"},
		{"mixed punctuation", "Pay/Pal (EU)", "pay_pal__eu_"},
		{"underscore kept", "file_storage", "file_storage"},
		{"unicode replaced", "Café", "caf_"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}

func TestSlugCollision(t *testing.T) {
	// Distinct display names can collide; callers resolve first-wins.
	assert.Equal(t, Slug("Web-Server"), Slug("Web Server"))
}

func TestFileSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces to underscores", "My Payment System", "My_Payment_System"},
		{"strips punctuation", "Shop: v2.0!", "Shop_v20"},
		{"keeps hyphen", "multi-region", "multi-region"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileSlug(tt.in))
		})
	}
}
