package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestParseDateFlexible(t *testing.T) {
	loc := time.FixedZone("PKT", 5*3600)
	tests := []struct {
		in      string
		want    time.Time
		nilWant bool
		wantErr bool
	}{
		{in: "", nilWant: true},
		{in: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, loc)},
		{in: "2024-03-01T10:00:00Z", want: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{in: "2024-03-01T10:00:00.000Z", want: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
		{in: "01/03/2024", want: time.Date(2024, 3, 1, 0, 0, 0, 0, loc)},
		{in: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDateFlexible(tt.in, loc)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if tt.nilWant {
			if got != nil {
				t.Errorf("%q: expected nil, got %v", tt.in, got)
			}
			continue
		}
		if got == nil || !got.Equal(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken("cashier", "s3cret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := ParseToken(tok, "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if claims.Username != "cashier" {
		t.Errorf("username = %q", claims.Username)
	}

	if _, err := ParseToken(tok, "other"); err == nil {
		t.Error("token accepted with wrong secret")
	}

	expired, _ := GenerateToken("cashier", "s3cret", -time.Minute)
	if _, err := ParseToken(expired, "s3cret"); err == nil {
		t.Error("expired token accepted")
	}
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for in, want := range map[string]bool{"12": true, "0": false, "-1": false, "abc": false} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: in}}
		if _, ok := ParseID(c, "id"); ok != want {
			t.Errorf("ParseID(%q) ok = %v, want %v", in, ok, want)
		}
	}
}
