package models

// DeriveRole determines the settlement role an actor actually holds on an
// interaction. The post author is the requester, the interaction creator is
// the responder; anyone else has no role. Callers must never trust a
// client-supplied role string without checking it against this.
func DeriveRole(actorID, authorID, responderID int) (string, error) {
	switch actorID {
	case authorID:
		return RoleRequester, nil
	case responderID:
		return RoleResponder, nil
	}
	return "", ErrForbidden
}

func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// ApplyConfirmation records the given role's confirmation on the interaction
// and reports whether it was the finalizing one (both sides now confirmed).
// The requester must rate the responder; the responder's rating is optional.
// A role that already confirmed gets ErrAlreadyConfirmed.
func (in *Interaction) ApplyConfirmation(role string, rating *int) (bool, error) {
	switch role {
	case RoleRequester:
		if in.RequesterConfirmed {
			return false, ErrAlreadyConfirmed
		}
		if rating == nil {
			return false, ErrRatingRequired
		}
		if !ValidRating(*rating) {
			return false, ErrInvalidRating
		}
		in.RequesterConfirmed = true
		in.ResponderRating = rating
	case RoleResponder:
		if in.ResponderConfirmed {
			return false, ErrAlreadyConfirmed
		}
		if rating != nil {
			if !ValidRating(*rating) {
				return false, ErrInvalidRating
			}
			in.RequesterRating = rating
		}
		in.ResponderConfirmed = true
	default:
		return false, ErrForbidden
	}
	return in.RequesterConfirmed && in.ResponderConfirmed, nil
}
