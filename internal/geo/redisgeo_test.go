package geo

import (
	"context"
	"testing"
)

func TestParsePostMember(t *testing.T) {
	t.Run("valid member", func(t *testing.T) {
		id, err := parsePostMember("post:42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 42 {
			t.Errorf("id mismatch: %d", id)
		}
	})

	t.Run("missing separator", func(t *testing.T) {
		if _, err := parsePostMember("post42"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		if _, err := parsePostMember("post:abc"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestMemberName(t *testing.T) {
	if got := memberName(7); got != "post:7" {
		t.Errorf("member name mismatch: %q", got)
	}
}

func TestAddRejectsBadCoordinates(t *testing.T) {
	l := NewPostLocator(nil, "posts:geo")

	cases := []struct {
		name     string
		lon, lat float64
	}{
		{"longitude too large", 181, 10},
		{"longitude too small", -181, 10},
		{"latitude too large", 10, 91},
		{"latitude too small", 10, -91},
		{"near zero", 0.00001, 0.00001},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := l.Add(context.Background(), 1, tc.lon, tc.lat); err == nil {
				t.Fatalf("expected error for lon=%v lat=%v", tc.lon, tc.lat)
			}
		})
	}
}
