package models

import (
	"errors"
	"testing"
)

func TestDeriveRole(t *testing.T) {
	const author, responder, stranger = 1, 2, 3

	t.Run("author is requester", func(t *testing.T) {
		role, err := DeriveRole(author, author, responder)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if role != RoleRequester {
			t.Errorf("role mismatch: %q", role)
		}
	})

	t.Run("interaction creator is responder", func(t *testing.T) {
		role, err := DeriveRole(responder, author, responder)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if role != RoleResponder {
			t.Errorf("role mismatch: %q", role)
		}
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		if _, err := DeriveRole(stranger, author, responder); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func intPtr(v int) *int { return &v }

func TestApplyConfirmation_Requester(t *testing.T) {
	t.Run("requires rating", func(t *testing.T) {
		in := Interaction{}
		if _, err := in.ApplyConfirmation(RoleRequester, nil); !errors.Is(err, ErrRatingRequired) {
			t.Fatalf("expected ErrRatingRequired, got %v", err)
		}
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		for _, r := range []int{0, 6, -1} {
			in := Interaction{}
			if _, err := in.ApplyConfirmation(RoleRequester, intPtr(r)); !errors.Is(err, ErrInvalidRating) {
				t.Fatalf("rating %d: expected ErrInvalidRating, got %v", r, err)
			}
		}
	})

	t.Run("stores responder rating", func(t *testing.T) {
		in := Interaction{}
		final, err := in.ApplyConfirmation(RoleRequester, intPtr(4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if final {
			t.Error("single confirmation must not finalize")
		}
		if !in.RequesterConfirmed || in.ResponderConfirmed {
			t.Errorf("flags mismatch: %v %v", in.RequesterConfirmed, in.ResponderConfirmed)
		}
		if in.ResponderRating == nil || *in.ResponderRating != 4 {
			t.Errorf("responder rating not stored: %v", in.ResponderRating)
		}
	})

	t.Run("second confirmation rejected", func(t *testing.T) {
		in := Interaction{RequesterConfirmed: true}
		if _, err := in.ApplyConfirmation(RoleRequester, intPtr(5)); !errors.Is(err, ErrAlreadyConfirmed) {
			t.Fatalf("expected ErrAlreadyConfirmed, got %v", err)
		}
	})
}

func TestApplyConfirmation_Responder(t *testing.T) {
	t.Run("rating optional", func(t *testing.T) {
		in := Interaction{}
		final, err := in.ApplyConfirmation(RoleResponder, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if final {
			t.Error("single confirmation must not finalize")
		}
		if !in.ResponderConfirmed {
			t.Error("responder flag not set")
		}
	})

	t.Run("stores optional requester rating", func(t *testing.T) {
		in := Interaction{}
		if _, err := in.ApplyConfirmation(RoleResponder, intPtr(3)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.RequesterRating == nil || *in.RequesterRating != 3 {
			t.Errorf("requester rating not stored: %v", in.RequesterRating)
		}
	})

	t.Run("invalid optional rating rejected", func(t *testing.T) {
		in := Interaction{}
		if _, err := in.ApplyConfirmation(RoleResponder, intPtr(9)); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("expected ErrInvalidRating, got %v", err)
		}
	})

	t.Run("second confirmation rejected", func(t *testing.T) {
		in := Interaction{ResponderConfirmed: true}
		if _, err := in.ApplyConfirmation(RoleResponder, nil); !errors.Is(err, ErrAlreadyConfirmed) {
			t.Fatalf("expected ErrAlreadyConfirmed, got %v", err)
		}
	})
}

func TestApplyConfirmation_Finalizes(t *testing.T) {
	in := Interaction{}
	if _, err := in.ApplyConfirmation(RoleRequester, intPtr(4)); err != nil {
		t.Fatalf("requester confirm: %v", err)
	}
	final, err := in.ApplyConfirmation(RoleResponder, nil)
	if err != nil {
		t.Fatalf("responder confirm: %v", err)
	}
	if !final {
		t.Fatal("second confirmation must finalize")
	}
}

func TestPointValid(t *testing.T) {
	valid := []Point{{0.0001, 0.0001}, {-180, -90}, {180, 90}, {76.95, 43.25}}
	for _, p := range valid {
		if !p.Valid() {
			t.Errorf("point %+v should be valid", p)
		}
	}
	invalid := []Point{{-180.1, 0}, {180.1, 0}, {0, 90.1}, {0, -90.1}}
	for _, p := range invalid {
		if p.Valid() {
			t.Errorf("point %+v should be invalid", p)
		}
	}
}
