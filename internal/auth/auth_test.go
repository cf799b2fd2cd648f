package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNew(t *testing.T) {
	v, err := New(HasherPlain, 0)
	require.NoError(t, err)
	assert.IsType(t, PlainText{}, v)

	v, err = New(HasherBcrypt, bcrypt.MinCost)
	require.NoError(t, err)
	assert.IsType(t, Bcrypt{}, v)

	_, err = New("md5", 0)
	assert.Error(t, err)
}

func TestPlainText(t *testing.T) {
	var v PlainText
	stored, err := v.Hash("secret1")
	require.NoError(t, err)
	assert.Equal(t, "secret1", stored)

	assert.True(t, v.Verify(stored, "secret1"))
	assert.False(t, v.Verify(stored, "Secret1"))
	assert.False(t, v.Verify(stored, ""))
}

func TestBcrypt(t *testing.T) {
	v := NewBcrypt(bcrypt.MinCost)
	stored, err := v.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored)

	assert.True(t, v.Verify(stored, "secret1"))
	assert.False(t, v.Verify(stored, "secret2"))
	assert.False(t, v.Verify("not-a-hash", "secret1"))
}

func TestBcryptLongSecret(t *testing.T) {
	v := NewBcrypt(bcrypt.MinCost)
	long := strings.Repeat("x", 100)

	stored, err := v.Hash(long)
	require.NoError(t, err)
	assert.True(t, v.Verify(stored, long))
	assert.False(t, v.Verify(stored, long[:72]), "bytes past 72 still count")
	assert.False(t, v.Verify(stored, long+"x"))
}

func TestNewBcryptClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewBcrypt(12).cost)
}
