package services

// Session is the single identity capability handed to downstream components.
// Guests carry a stable guest key instead of a user id/email.
type Session struct {
	UserID   string
	Email    string
	Role     string
	Guest    bool
	GuestKey string
}

// Identity keys carts and order ownership: the email for signed-in users,
// the guest cookie key otherwise.
func (s Session) Identity() string {
	if s.Guest {
		return s.GuestKey
	}
	return s.Email
}

func (s Session) IsStaff() bool { return !s.Guest && s.Role == "staff" }
