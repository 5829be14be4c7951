package user

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User identifies report authors and commenters. Email is the only
// attribute with a uniqueness constraint; no authentication is attached
// to the role field.
type User struct {
	ID         string     `json:"id" bson:"_id"`
	Email      string     `json:"email" bson:"email"`
	Name       string     `json:"name" bson:"name"`
	Department string     `json:"department" bson:"department"`
	Role       Role       `json:"role" bson:"role"`
	CreatedAt  time.Time  `json:"createdAt" bson:"created_at"`
	LastLogin  *time.Time `json:"lastLogin" bson:"last_login"`
}

type CreateRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Role       Role   `json:"role"`
}

type Update struct {
	Name       *string    `json:"name"`
	Department *string    `json:"department"`
	Role       *Role      `json:"role"`
	LastLogin  *time.Time `json:"lastLogin"`
}

func (u *Update) apply(usr *User) {
	if u.Name != nil {
		usr.Name = *u.Name
	}
	if u.Department != nil {
		usr.Department = *u.Department
	}
	if u.Role != nil {
		usr.Role = *u.Role
	}
	if u.LastLogin != nil {
		usr.LastLogin = u.LastLogin
	}
}
