package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "DB_DRIVER", "PAGE_SIZE", "MEMBER_ORDERINGS", "DEFAULT_MEMBER_ORDERING")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, 5, cfg.PageSize)
	require.Equal(t, []string{"student__lastname", "student__firstname", "date_joined", "-date_joined"}, cfg.MemberOrderings)
	require.Equal(t, "student__lastname", cfg.DefaultMemberSort)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("MEMBER_ORDERINGS", "date_joined,-date_joined")
	t.Setenv("DEFAULT_MEMBER_ORDERING", "-date_joined")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "file:test.db", cfg.DatabaseURL)
	require.Equal(t, 10, cfg.PageSize)
	require.Equal(t, []string{"date_joined", "-date_joined"}, cfg.MemberOrderings)
}

func TestValidate(t *testing.T) {
	base := Config{
		DBDriver:          "postgres",
		PageSize:          5,
		MemberOrderings:   []string{"student__lastname"},
		DefaultMemberSort: "student__lastname",
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.DBDriver = "oracle"
	require.Error(t, bad.Validate())

	bad = base
	bad.PageSize = 0
	require.Error(t, bad.Validate())

	bad = base
	bad.DefaultMemberSort = "date_joined"
	require.Error(t, bad.Validate())
}
