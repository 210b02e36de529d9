package database

import (
	"testing"

	"bakerist/pkg/utils"
)

func TestConnString(t *testing.T) {
	tests := []struct {
		name   string
		config utils.DatabaseConfig
		env    string
		want   string
	}{
		{
			name:   "dev gets sslmode disable",
			config: utils.DatabaseConfig{URL: "postgres://u:p@localhost:5432/bakerist"},
			env:    "development",
			want:   "postgres://u:p@localhost:5432/bakerist?sslmode=disable",
		},
		{
			name:   "production requires full verification",
			config: utils.DatabaseConfig{URL: "postgres://u:p@db.example.com:5432/bakerist"},
			env:    "production",
			want:   "postgres://u:p@db.example.com:5432/bakerist?sslmode=verify-full",
		},
		{
			name:   "insecure production keeps TLS but skips verification",
			config: utils.DatabaseConfig{URL: "postgres://u:p@db.example.com:5432/bakerist", SSLInsecure: true},
			env:    "production",
			want:   "postgres://u:p@db.example.com:5432/bakerist?sslmode=require",
		},
		{
			name:   "explicit sslmode wins",
			config: utils.DatabaseConfig{URL: "postgres://u:p@db.example.com:5432/bakerist?sslmode=prefer"},
			env:    "production",
			want:   "postgres://u:p@db.example.com:5432/bakerist?sslmode=prefer",
		},
		{
			name:   "existing query params use ampersand",
			config: utils.DatabaseConfig{URL: "postgres://u:p@localhost:5432/bakerist?application_name=bakerist"},
			env:    "development",
			want:   "postgres://u:p@localhost:5432/bakerist?application_name=bakerist&sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConnString(tt.config, tt.env); got != tt.want {
				t.Errorf("ConnString() = %q, want %q", got, tt.want)
			}
		})
	}
}
