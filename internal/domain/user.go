package domain

import "time"

type User struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Principal returns the request identity view of the user. The password hash
// never leaves the domain layer through this path.
func (u User) Principal() Principal {
	return Principal{
		Subject:  u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
	}
}
