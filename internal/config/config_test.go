package config

import "testing"

func validConfig() Config {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()

	if cfg.KnowledgeBase.Source != "file" {
		t.Errorf("source = %q, want file", cfg.KnowledgeBase.Source)
	}
	if cfg.KnowledgeBase.Key != "faqd:kb" {
		t.Errorf("key = %q, want faqd:kb", cfg.KnowledgeBase.Key)
	}
	if cfg.Matching.Threshold != 0.5 {
		t.Errorf("threshold = %v, want 0.5", cfg.Matching.Threshold)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Error("http timeout defaults not applied")
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("cors origins = %v, want [*]", cfg.CORS.AllowedOrigins)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_UnknownSource(t *testing.T) {
	cfg := validConfig()
	cfg.KnowledgeBase.Source = "postgres"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown knowledge base source")
	}

	expected := `knowledge_base.source must be "file" or "redis", got "postgres"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_RedisRequiresAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.KnowledgeBase.Source = "redis"
	cfg.KnowledgeBase.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for redis source without addrs")
	}

	cfg.KnowledgeBase.Addrs = []string{"localhost:6379"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with addrs set: %v", err)
	}
}

func TestValidate_ThresholdBounds(t *testing.T) {
	for _, bad := range []float64{-0.1, 1.5} {
		cfg := validConfig()
		cfg.Matching.Threshold = bad
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for threshold %v", bad)
		}
	}

	cfg := validConfig()
	cfg.Matching.Threshold = 1.0
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error for threshold 1.0: %v", err)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("FAQD_TEST_PORT", "9090")

	got := string(expandEnvVars([]byte("port: ${FAQD_TEST_PORT}\npath: ${FAQD_TEST_MISSING:-data/faqs.json}\n")))
	want := "port: 9090\npath: data/faqs.json\n"
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}
