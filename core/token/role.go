package token

// Role is the permission level granted by a token.
type Role string

const (
	// RoleSubscriber can only subscribe to streams in the session.
	RoleSubscriber Role = "subscriber"
	// RolePublisher can publish and subscribe. Default role for new tokens.
	RolePublisher Role = "publisher"
	// RoleModerator can publish, subscribe, and force-disconnect other
	// participants.
	RoleModerator Role = "moderator"
)

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	switch r {
	case RoleSubscriber, RolePublisher, RoleModerator:
		return true
	}
	return false
}
