package internal

import (
	"strings"
	"testing"
)

func TestStoreConfig_EmptyBackendDefaultsLocal(t *testing.T) {
	cfg := StoreConfig{Backend: "", Path: "./doc.json"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty backend should default to local: %v", err)
	}
	if cfg.Backend != StoreBackendLocal {
		t.Errorf("backend = %q, want %q", cfg.Backend, StoreBackendLocal)
	}
}

func TestStoreConfig_LocalRequiresPath(t *testing.T) {
	cfg := StoreConfig{Backend: "local"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("local backend without path should fail")
	}
	if !strings.Contains(err.Error(), "path is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStoreConfig_S3RequiresSettings(t *testing.T) {
	cfg := StoreConfig{Backend: "s3"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("s3 backend without settings should fail")
	}

	cfg.S3 = S3Config{Endpoint: "minio:9000", AccessKey: "k", SecretKey: "s", Bucket: "shotmark"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("complete s3 settings should pass: %v", err)
	}
}

func TestStoreConfig_InvalidBackend(t *testing.T) {
	cfg := StoreConfig{Backend: "redis", Path: "x"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid backend should fail validation")
	}
}

func TestAssetsConfig_Defaults(t *testing.T) {
	cfg := AssetsConfig{Dir: "./assets"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("fs mode with dir should pass: %v", err)
	}
	if cfg.Mode != AssetModeFS {
		t.Errorf("mode = %q, want %q", cfg.Mode, AssetModeFS)
	}
	if cfg.GrantTTL <= 0 {
		t.Errorf("grant ttl not defaulted: %v", cfg.GrantTTL)
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: ""}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_UserValidation(t *testing.T) {
	cfg := AuthConfig{Users: []UserConfig{{Username: "admin"}}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("user without password hash should fail")
	}

	cfg.Users = []UserConfig{{Username: "admin", PasswordHash: "$2a$10$x", Role: "admin"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid user should pass: %v", err)
	}
}

func TestFullConfig_DefaultsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestFullConfig_StoreValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch store error")
	}
}
