// Package migrations applies the embedded schema at startup. The schema is
// written to be idempotent, so there is no version table; every boot replays
// it against the live database.
package migrations

import (
	_ "embed"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed schema.sql
var schemaSQL string

// Apply runs each schema statement in order inside one transaction.
// Statements are executed one at a time because the Postgres extended
// protocol rejects multi-command strings.
func Apply(db *gorm.DB) error {
	stmts := splitStatements(schemaSQL)

	err := db.Transaction(func(tx *gorm.DB) error {
		for i, stmt := range stmts {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("schema statement %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("Schema applied", zap.Int("statements", len(stmts)))
	return nil
}

// splitStatements splits SQL on semicolons while keeping dollar-quoted
// bodies (DO $$ ... $$) intact.
func splitStatements(sql string) []string {
	var (
		stmts    []string
		buf      strings.Builder
		inDollar bool
	)

	for i := 0; i < len(sql); i++ {
		if strings.HasPrefix(sql[i:], "$$") {
			inDollar = !inDollar
			buf.WriteString("$$")
			i++
			continue
		}
		if sql[i] == ';' && !inDollar {
			if stmt := strings.TrimSpace(buf.String()); stmt != "" {
				stmts = append(stmts, stmt)
			}
			buf.Reset()
			continue
		}
		buf.WriteByte(sql[i])
	}
	if stmt := strings.TrimSpace(buf.String()); stmt != "" {
		stmts = append(stmts, stmt)
	}
	return stmts
}
