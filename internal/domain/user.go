package domain

// User is the profile of the logged-in user as returned by the backend API.
type User struct {
	Email         string `json:"email"`
	UserFirstName string `json:"userFirstName"`
	UserLastName  string `json:"userLastName"`
	Phone         string `json:"phone"`
	Birthday      string `json:"birthday"`
	Address       string `json:"address"`
}

// ProfileLookup is the normalized result of a profile request: either a user
// was found or the backend answered with nothing usable.
type ProfileLookup struct {
	user  *User
	found bool
}

// Found wraps a user into a successful lookup.
func Found(u User) ProfileLookup {
	return ProfileLookup{user: &u, found: true}
}

// NotFound is the empty lookup.
func NotFound() ProfileLookup {
	return ProfileLookup{}
}

// User returns the user and whether one was found.
func (p ProfileLookup) User() (User, bool) {
	if !p.found {
		return User{}, false
	}
	return *p.user, true
}
