package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasherCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "configured cost", cost: 10, want: 10},
		{name: "minimum cost", cost: bcrypt.MinCost, want: bcrypt.MinCost},
		{name: "zero falls back", cost: 0, want: bcrypt.DefaultCost},
		{name: "too low falls back", cost: 3, want: bcrypt.DefaultCost},
		{name: "too high falls back", cost: 32, want: bcrypt.DefaultCost},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewBcryptHasher(tc.cost).Cost())
		})
	}
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)

	assert.NoError(t, h.Compare(hashed, "s3cret"))
	assert.Error(t, h.Compare(hashed, "wrong"))

	again, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again, "hashes must be salted")
}

func TestBcryptHasherLongPasswords(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
	}{
		{name: "73 bytes", password: strings.Repeat("a", 73)},
		{name: "100 bytes", password: strings.Repeat("a", 100)},
		{name: "multi-byte runes past 72 bytes", password: strings.Repeat("ü", 50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hashed, err := h.Hash(tc.password)
			require.NoError(t, err)
			assert.NoError(t, h.Compare(hashed, tc.password))
		})
	}

	t.Run("no truncation at 72 bytes", func(t *testing.T) {
		prefix := strings.Repeat("a", 72)
		hashed, err := h.Hash(prefix + "x")
		require.NoError(t, err)
		assert.Error(t, h.Compare(hashed, prefix+"y"))
		assert.Error(t, h.Compare(hashed, prefix))
	})
}

func TestPrehashFitsBcryptInput(t *testing.T) {
	for _, password := range []string{"", "s3cret", strings.Repeat("ü", 100)} {
		digest := prehash(password)
		assert.Len(t, digest, 44)
		assert.NotContains(t, string(digest), "\x00")
	}
	assert.Equal(t, prehash("s3cret"), prehash("s3cret"))
	assert.NotEqual(t, prehash("s3cret"), prehash("s3cres"))
}
