package ident

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNewFormat(t *testing.T) {
	before := time.Now().UnixMilli()
	id := New()
	after := time.Now().UnixMilli()

	if len(id) < 13+suffixChars {
		t.Fatalf("id too short: %q", id)
	}

	millis, err := strconv.ParseInt(id[:len(id)-suffixChars], 10, 64)
	if err != nil {
		t.Fatalf("timestamp prefix not numeric: %q", id)
	}
	if millis < before || millis > after {
		t.Errorf("timestamp %d outside [%d, %d]", millis, before, after)
	}

	for _, r := range id[len(id)-suffixChars:] {
		if !strings.ContainsRune(base36, r) {
			t.Errorf("suffix contains non-base36 rune %q in %q", r, id)
		}
	}
}

func TestNewDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = true
	}
}
