package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var cheap = Argon2Params{Memory: 64, Iterations: 1, Parallelism: 1, KeyLength: 16, SaltLength: 8}

func TestPasswordHasher(t *testing.T) {
	t.Parallel()
	h := NewPasswordHasher("pepper").WithParams(cheap)

	tests := []struct {
		name     string
		password string
	}{
		{"simple", "password123"},
		{"symbols", "P@ssw0rd!#$%^&*()"},
		{"unicode", "mot de passe sécurisé"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=64,t=1,p=1$"))
			require.Len(t, strings.Split(encoded, "$"), 6)

			require.NoError(t, h.Verify(tt.password, encoded))
			require.ErrorIs(t, h.Verify(tt.password+"x", encoded), ErrPasswordMismatch)
		})
	}
}

func TestPasswordHasherSaltsDiffer(t *testing.T) {
	t.Parallel()
	h := NewPasswordHasher("").WithParams(cheap)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestPasswordHasherPepperMatters(t *testing.T) {
	t.Parallel()

	encoded, err := NewPasswordHasher("one").WithParams(cheap).Hash("secret")
	require.NoError(t, err)

	err = NewPasswordHasher("two").WithParams(cheap).Verify("secret", encoded)
	require.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestPasswordHasherMalformed(t *testing.T) {
	t.Parallel()
	h := NewPasswordHasher("")

	for _, encoded := range []string{
		"",
		"plain",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!$aGFzaA",
	} {
		require.ErrorIs(t, h.Verify("x", encoded), ErrMalformedHash, encoded)
	}
}

func TestLoadOrCreatePepper(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "secrets", "pepper")

	first, err := LoadOrCreatePepper(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := LoadOrCreatePepper(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestNewSessionToken(t *testing.T) {
	t.Parallel()

	a, err := NewSessionToken()
	require.NoError(t, err)
	b, err := NewSessionToken()
	require.NoError(t, err)

	require.Len(t, a, 43)
	require.NotEqual(t, a, b)

	_, err = RandomToken(0)
	require.Error(t, err)
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	fp := FingerprintToken("bearer")
	require.Len(t, fp, 43)
	require.NotEqual(t, "bearer", fp)
	require.Equal(t, fp, FingerprintToken("bearer"))
	require.NotEqual(t, fp, FingerprintToken("bearer2"))
}
