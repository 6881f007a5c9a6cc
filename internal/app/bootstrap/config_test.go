package bootstrap

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "sharetable",
		TokenSecret:   "test-secret",
		TokenTTL:      168 * time.Hour,
		AuthMode:      "token",
		PageLimit:     100,
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(&config.CoreConfig{}, validAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig failed: %v", err)
	}
}

func TestValidateConfig_MissingTokenSecret(t *testing.T) {
	cfg := validAppConfig()
	cfg.TokenSecret = ""

	err := ValidateConfig(&config.CoreConfig{}, cfg, zap.NewNop())
	if err == nil {
		t.Fatal("expected error for empty token_secret")
	}
	if !strings.Contains(err.Error(), "token_secret") {
		t.Errorf("error should name token_secret: %v", err)
	}
}

func TestValidateConfig_BadMongoURI(t *testing.T) {
	cfg := validAppConfig()
	cfg.MongoURI = "http://not-a-mongo-uri"

	if err := ValidateConfig(&config.CoreConfig{}, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for invalid mongo URI")
	}
}

func TestValidateConfig_BadAuthMode(t *testing.T) {
	cfg := validAppConfig()
	cfg.AuthMode = "session"

	if err := ValidateConfig(&config.CoreConfig{}, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for unknown auth_mode")
	}
}

func TestValidateConfig_NegativeTokenTTL(t *testing.T) {
	cfg := validAppConfig()
	cfg.TokenTTL = -time.Hour

	if err := ValidateConfig(&config.CoreConfig{}, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for negative token_ttl")
	}
}

func TestValidateConfig_BadPageLimit(t *testing.T) {
	cfg := validAppConfig()
	cfg.PageLimit = 0

	if err := ValidateConfig(&config.CoreConfig{}, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for page_limit below 1")
	}
}
