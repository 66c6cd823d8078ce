package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sustena/console/internal/common"
)

func TestValidateLogin(t *testing.T) {
	require.NoError(t, ValidateLogin("a@b.com", "secret1"))
	require.ErrorIs(t, ValidateLogin("", "secret1"), common.ErrInvalidEmail)
	require.ErrorIs(t, ValidateLogin("not-an-email", "secret1"), common.ErrInvalidEmail)
	require.ErrorIs(t, ValidateLogin("a@b.com", ""), common.ErrEmptyPassword)
}

func TestValidateCode(t *testing.T) {
	require.NoError(t, ValidateCode("12345"))
	require.ErrorIs(t, ValidateCode("12a45"), common.ErrInvalidCode)
	require.ErrorIs(t, ValidateCode("1234"), common.ErrInvalidCode)
	require.ErrorIs(t, ValidateCode("123456"), common.ErrInvalidCode)
	require.ErrorIs(t, ValidateCode(""), common.ErrInvalidCode)
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, ValidatePassword("abcdef1!"))
	require.ErrorIs(t, ValidatePassword("short1!"), common.ErrWeakPassword)
	require.ErrorIs(t, ValidatePassword("lettersonly!"), common.ErrWeakPassword)
	require.ErrorIs(t, ValidatePassword("12345678!"), common.ErrWeakPassword)
	require.ErrorIs(t, ValidatePassword("abcdefg1"), common.ErrWeakPassword)
}

func TestMaskEmail(t *testing.T) {
	require.Equal(t, "use********@host.com", MaskEmail("username@host.com"))
	require.Equal(t, "ab@c.io", MaskEmail("ab@c.io"))
}

func TestUserHelpers(t *testing.T) {
	u := &User{FirstName: "A", LastName: "B", Roles: []string{"admin"}}
	require.Equal(t, "A B", u.FullName())
	require.True(t, u.HasRole("admin"))
	require.False(t, u.HasRole("user"))

	require.Equal(t, "A", (&User{FirstName: "A"}).FullName())
	require.Equal(t, "B", (&User{LastName: "B"}).FullName())
}
