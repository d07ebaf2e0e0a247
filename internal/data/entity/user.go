package entity

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleHotelier UserRole = "hotelier"
	RoleAdmin    UserRole = "admin"
)

type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusApproved  UserStatus = "approved"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusRejected  UserStatus = "rejected"
)

type User struct {
	Base
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	Phone        *string    `db:"phone"`
	Role         UserRole   `db:"role"`
	Status       UserStatus `db:"status"`
}

// CanSignIn reports whether the account may obtain or use a token.
func (u *User) CanSignIn() bool {
	return u.Status == UserStatusApproved
}
