package models

import (
	"strings"
	"time"
)

type User struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	FirstName      string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName       string    `gorm:"type:varchar(255);not null" json:"lastName"`
	Email          string    `gorm:"type:varchar(127);uniqueIndex;not null" json:"email"`
	PasswordDigest string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FullName is first name, a single space, then last name. A nil user yields "".
func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	return u.FirstName + " " + u.LastName
}

// Normalize trims surrounding whitespace and lower-cases the email.
func (u *User) Normalize() {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}
