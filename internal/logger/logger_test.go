package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVsRedactsSecretsAndHashesUserIDs(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"session_token", "abc.def.ghi",
		"user_id", "google:12345",
		"date", "2024-06-01",
	})

	if len(out) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(out))
	}
	if out[1] != "[REDACTED]" {
		t.Fatalf("expected token to be redacted, got %v", out[1])
	}
	hashed, ok := out[3].(string)
	if !ok || !strings.HasPrefix(hashed, "hash:") || strings.Contains(hashed, "12345") {
		t.Fatalf("expected hashed user id, got %v", out[3])
	}
	if out[5] != "2024-06-01" {
		t.Fatalf("expected date to pass through, got %v", out[5])
	}
}

func TestSanitizeKVsKeepsDanglingKey(t *testing.T) {
	out := sanitizeKVs([]interface{}{"status", 200, "orphan"})
	if len(out) != 3 || out[2] != "orphan" {
		t.Fatalf("expected dangling key to be kept, got %v", out)
	}
}

func TestNopLoggerAcceptsCalls(t *testing.T) {
	log := Nop().With("component", "test")
	log.Info("hello", "user_id", "u1")
	log.Sync()
}
