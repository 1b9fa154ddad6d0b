package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ann Lee", (&User{FirstName: "Ann", LastName: "Lee"}).FullName())

	var nobody *User
	assert.Equal(t, "", nobody.FullName())
}

func TestUser_Normalize(t *testing.T) {
	u := &User{FirstName: " Ann ", LastName: "Lee\n", Email: " Ann@Example.COM "}
	u.Normalize()

	assert.Equal(t, "Ann", u.FirstName)
	assert.Equal(t, "Lee", u.LastName)
	assert.Equal(t, "ann@example.com", u.Email)
}
