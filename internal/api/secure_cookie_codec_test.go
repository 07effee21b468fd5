package api

import (
	"bytes"
	"strings"
	"testing"
)

func TestSecureCookieCodecRoundTrip(t *testing.T) {
	codec, err := newSecureCookieCodec([]byte(testSecretKey))
	if err != nil {
		t.Fatalf("newSecureCookieCodec() unexpected error: %v", err)
	}

	sealed, err := codec.seal("session", []byte("payload"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if !strings.HasPrefix(sealed, secureCookieVersion+".") {
		t.Fatalf("expected versioned value, got %q", sealed)
	}

	opened, err := codec.open("session", sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(opened, []byte("payload")) {
		t.Fatalf("open() = %q, want payload", opened)
	}

	again, err := codec.seal("session", []byte("payload"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if again == sealed {
		t.Fatal("expected fresh nonce per seal")
	}
}

func TestSecureCookieCodecRejectsWrongPurposeAndTampering(t *testing.T) {
	codec, err := newSecureCookieCodec([]byte(testSecretKey))
	if err != nil {
		t.Fatalf("newSecureCookieCodec() unexpected error: %v", err)
	}
	sealed, err := codec.seal("session", []byte("payload"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	if _, err := codec.open("language", sealed); err == nil {
		t.Fatal("expected purpose mismatch to fail")
	}
	for _, raw := range []string{"", "v1.", "v2." + sealed[3:], sealed[:len(sealed)-4] + "AAAA", "plain-token"} {
		if _, err := codec.open("session", raw); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
	if _, err := codec.seal(" ", []byte("payload")); err == nil {
		t.Fatal("expected empty purpose to fail")
	}
}

func TestDeriveKeySeparatesPurposes(t *testing.T) {
	first, err := deriveKey([]byte(testSecretKey), sessionTokenKeyInfo)
	if err != nil {
		t.Fatalf("deriveKey: %v", err)
	}
	second, err := deriveKey([]byte(testSecretKey), cookieKeyInfo)
	if err != nil {
		t.Fatalf("deriveKey: %v", err)
	}
	if len(first) != 32 || bytes.Equal(first, second) {
		t.Fatal("expected distinct 32-byte keys per purpose")
	}
	if _, err := deriveKey(nil, cookieKeyInfo); err == nil {
		t.Fatal("expected empty secret to fail")
	}
}
