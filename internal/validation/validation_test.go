package validation_test

import (
	"strings"
	"testing"

	"github.com/harsha/nutrition-dashboard/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "simple address", email: "a@x.com"},
		{name: "subdomain", email: "user@mail.example.co.uk"},
		{name: "plus tag", email: "user+tag@example.com"},
		{name: "dots in local part", email: "first.last@example.com"},
		{name: "empty", email: "", wantErr: true},
		{name: "missing at", email: "userexample.com", wantErr: true},
		{name: "missing domain", email: "user@", wantErr: true},
		{name: "missing tld", email: "user@example", wantErr: true},
		{name: "spaces", email: "user name@example.com", wantErr: true},
		{name: "double at", email: "user@@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Invalid email format", err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{name: "minimum length", password: "secret"},
		{name: "typical password", password: "secret1"},
		{name: "maximum length", password: strings.Repeat("a", 100)},
		{name: "too short", password: "five5", wantMsg: "Password must be at least 6 characters long"},
		{name: "empty", password: "", wantMsg: "Password must be at least 6 characters long"},
		{name: "too long", password: strings.Repeat("a", 101), wantMsg: "Password must be no more than 100 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidatePassword(tt.password)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
