package storage

import (
	"testing"

	"service_inventory/internal/config"
)

func TestPublicBaseURL(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"explicit", config.MinIOConfig{PublicBaseURL: "https://cdn.example.com/files/"}, "https://cdn.example.com/files"},
		{"http", config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "orders"}, "http://localhost:9000/orders"},
		{"https", config.MinIOConfig{Endpoint: "s3.local", Bucket: "b", UseSSL: true}, "https://s3.local/b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := publicBaseURL(tc.cfg); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
