package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	t.Run("splits plain statements on semicolons", func(t *testing.T) {
		stmts := splitStatements("CREATE TABLE a (id int);\nCREATE TABLE b (id int);\n")
		require.Len(t, stmts, 2)
		assert.Equal(t, "CREATE TABLE a (id int)", stmts[0])
		assert.Equal(t, "CREATE TABLE b (id int)", stmts[1])
	})

	t.Run("keeps dollar-quoted bodies intact", func(t *testing.T) {
		sql := `DO $$ BEGIN
    CREATE TYPE x AS ENUM ('a', 'b');
EXCEPTION WHEN duplicate_object THEN NULL;
END $$;
CREATE TABLE t (id int);`
		stmts := splitStatements(sql)
		require.Len(t, stmts, 2)
		assert.Contains(t, stmts[0], "CREATE TYPE x AS ENUM ('a', 'b');")
		assert.Contains(t, stmts[0], "END $$")
		assert.Equal(t, "CREATE TABLE t (id int)", stmts[1])
	})

	t.Run("drops trailing whitespace-only fragments", func(t *testing.T) {
		stmts := splitStatements("SELECT 1;  \n\n")
		require.Len(t, stmts, 1)
	})
}

func TestEmbeddedSchema(t *testing.T) {
	stmts := splitStatements(schemaSQL)
	require.NotEmpty(t, stmts)

	// every DO block must survive splitting as a single statement
	for _, stmt := range stmts {
		opens := strings.Count(stmt, "$$")
		assert.Equal(t, 0, opens%2, "unbalanced dollar quoting in statement: %s", stmt)
	}

	joined := strings.Join(stmts, "\n")
	for _, table := range []string{
		"users", "clients", "gst_registrations", "gst_signatories",
		"directors", "shareholders", "partners", "bank_accounts",
		"epf_esi_registrations", "other_registrations",
	} {
		assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
