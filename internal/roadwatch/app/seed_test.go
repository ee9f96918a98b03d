package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/internal/roadwatch/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
roles: [inspecteur, MANAGER]
parametres:
  - cle: limite_tentatives
    valeur: "7"
  - cle: message_accueil
    valeur: Bienvenue
    description: texte affiché à la connexion
entreprises: [Colas, " Sogea "]
lieux:
  - libelle: Analakely
    ville: Antananarivo
  - libelle: Tanambao
    ville: Toamasina
`

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestApplySeedIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	seed, err := LoadSeed(writeSeed(t, seedYAML))
	require.NoError(t, err)

	first, err := ApplySeed(ctx, s, seed)
	require.NoError(t, err)
	// MANAGER and limite_tentatives ship with the schema.
	require.Equal(t, SeedResult{Roles: 1, AuthParameters: 1, Companies: 2, Places: 2}, first)

	second, err := ApplySeed(ctx, s, seed)
	require.NoError(t, err)
	require.Equal(t, SeedResult{}, second)

	role, err := s.Roles().GetRoleByName(ctx, "INSPECTEUR")
	require.NoError(t, err)
	require.NotEmpty(t, role.ID)

	p, err := s.AuthParams().GetAuthParam(ctx, domain.ParamMaxAttempts)
	require.NoError(t, err)
	require.NotEqual(t, "7", p.Value, "existing parameters are left alone")

	_, err = s.Companies().GetCompanyByName(ctx, "Sogea")
	require.NoError(t, err)

	places, err := s.Places().ListPlacesByCity(ctx, "Toamasina")
	require.NoError(t, err)
	require.Len(t, places, 1)
}

func TestLoadSeedErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadSeed(writeSeed(t, "roles: {not: [a list"))
	require.Error(t, err)
}
