package utils

import "testing"

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:3000/api/", want: "http://localhost:3000/api"},
		{name: "no scheme", raw: "localhost:3000/api", want: "http://localhost:3000/api"},
		{name: "https", raw: " https://funds.example.org/api ", want: "https://funds.example.org/api"},
		{name: "upper case scheme", raw: "HTTP://localhost:3000", want: "http://localhost:3000"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http:///api", wantErr: true},
		{name: "ftp scheme", raw: "ftp://localhost:3000/api", wantErr: true},
		{name: "file scheme", raw: "file:///etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
