package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-member-auth/models"
)

var testPrincipal = models.Principal{LoginName: "alice", Authorities: []string{"READ", "WRITE"}}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testPrincipal, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Fatal("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*models.TokenClaims)
	if !ok {
		t.Fatal("could not cast claims to TokenClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject 'alice', got %s", claims.Subject)
	}
	if strings.Join(claims.Authorities, ",") != "READ,WRITE" {
		t.Errorf("unexpected authorities claim: %v", claims.Authorities)
	}
	if token.Principal.LoginName != "alice" {
		t.Errorf("expected token principal alice, got %q", token.Principal.LoginName)
	}
}

func TestGenerateJWTToken_CopiesAuthorities(t *testing.T) {
	p := models.Principal{LoginName: "alice", Authorities: []string{"READ"}}
	token, err := GenerateJWTToken("iss", p, time.Hour, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Authorities[0] = "ADMIN"

	if token.Principal.Authorities[0] != "READ" {
		t.Errorf("token principal must not share memory with the input, got %v", token.Principal.Authorities)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		principal models.Principal
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", testPrincipal, time.Hour, "key"},
		{"zero duration", "iss", testPrincipal, 0, "key"},
		{"negative duration", "iss", testPrincipal, -time.Second, "key"},
		{"empty key", "iss", testPrincipal, time.Hour, ""},
		{"empty login", "iss", models.Principal{}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.principal, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("iss", testPrincipal, time.Hour, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Principal.LoginName != "alice" {
		t.Errorf("expected alice, got %q", parsed.Principal.LoginName)
	}
	if !parsed.Principal.HasAuthority("WRITE") {
		t.Errorf("expected WRITE authority, got %v", parsed.Principal.Authorities)
	}
}

func TestValidateAndParseJWTToken_Invalid(t *testing.T) {
	valid, err := GenerateJWTToken("iss", testPrincipal, time.Hour, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "iss", Subject: "alice"},
	}).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "iss", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "iss"},
		{"wrong issuer", valid.SignedString, "key", "other"},
		{"expired", expired, "key", "iss"},
		{"none algorithm", noneAlg, "key", "iss"},
		{"missing exp", noExp, "key", "iss"},
		{"missing subject", noSubject, "key", "iss"},
		{"garbage", "not.a.jwt", "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"Basic YWxpY2U6cA==", "", true},
		{"Bearer", "", true},
		{"Bearer ", "", true},
		{"Bearer a b", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
