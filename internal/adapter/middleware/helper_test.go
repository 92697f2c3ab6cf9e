package middleware

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	good := []string{
		strings.Repeat("a", 32),
		"8f14e45f-ceea-467f-a1d4-91b2c3d4e5f6",
	}
	for _, id := range good {
		if !validReqID(id) {
			t.Errorf("%q should be valid", id)
		}
	}
	bad := []string{"", "short", strings.Repeat("g", 32), "1234"}
	for _, id := range bad {
		if validReqID(id) {
			t.Errorf("%q should be invalid", id)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	// epoch seconds
	got, err := parseRequestAt(strconv.FormatInt(now.Unix(), 10))
	if err != nil || !got.Equal(now) {
		t.Fatalf("epoch seconds: %v %v", got, err)
	}

	// epoch milliseconds
	got, err = parseRequestAt(strconv.FormatInt(now.UnixMilli(), 10))
	if err != nil || !got.Equal(now) {
		t.Fatalf("epoch ms: %v %v", got, err)
	}

	// RFC3339 with zone
	got, err = parseRequestAt(now.Format(time.RFC3339))
	if err != nil || !got.Equal(now) {
		t.Fatalf("rfc3339: %v %v", got, err)
	}

	// offset zone normalizes to UTC
	offset := now.In(time.FixedZone("X", 7*3600))
	got, err = parseRequestAt(offset.Format(time.RFC3339))
	if err != nil || !got.Equal(now) {
		t.Fatalf("offset zone: %v %v", got, err)
	}

	// rejected inputs
	for _, raw := range []string{"", "not-a-time", "2026-08-31T10:00:00"} {
		if _, err := parseRequestAt(raw); err == nil {
			t.Errorf("%q should be rejected", raw)
		}
	}
}

func TestBuildKey(t *testing.T) {
	k := buildKey("POST", "/payments", "actor", "req")
	if k != "idemp:post:/payments:actor:req" {
		t.Fatalf("key = %q", k)
	}
}
