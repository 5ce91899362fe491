package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-30")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-08-30" {
		t.Fatalf("String = %q", d.String())
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "30/08/2026", "2026-13-01", "2026-08-30T12:00:00Z", "ayer"} {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalid) {
			t.Fatalf("ParseDate(%q): err = %v, esperaba ErrInvalid", s, err)
		}
	}
}

func TestNewDateTruncates(t *testing.T) {
	instant := time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC)
	d := NewDate(instant)
	if d.String() != "2026-08-30" {
		t.Fatalf("String = %q", d.String())
	}
	if h := d.Hour(); h != 0 {
		t.Fatalf("hora = %d, esperaba 0", h)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("2026-01-05")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2026-01-05"` {
		t.Fatalf("Marshal = %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip: %v != %v", back, d)
	}
}

func TestDateUnmarshalNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("esperaba zero, obtuve %v", d)
	}
}
