// Package kvstore implementa la pasarela de persistencia del sistema: un
// almacén clave/valor síncrono sobre un único archivo SQLite. Cada colección
// (catálogo, libro de movimientos, proveedores) vive serializada como JSON
// bajo su propia clave, el mismo esquema de claves que usaba el CRM original.
package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/greenforce/gf-crm/internal/domain"
)

// Claves de colección.
const (
	KeyInventory = "inventory"
	KeyMovements = "stockMovements"
	KeySuppliers = "suppliers"
)

// KV acceso clave/valor síncrono. Get devuelve def si la clave no existe;
// Set reemplaza el valor completo o falla sin efecto parcial.
type KV interface {
	Get(key string, def []byte) ([]byte, error)
	Set(key string, value []byte) error
}

// Store almacén clave/valor sobre SQLite. Implementa KV en modo autocommit;
// RunTx agrupa varios Set en una transacción.
type Store struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// Open abre (o crea) el almacén en la ruta indicada.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("kvstore: ruta de almacén requerida")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("kvstore: abrir base: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("kvstore: ping: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("kvstore: crear esquema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra la base subyacente.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get devuelve el valor de key, o def si no existe.
func (s *Store) Get(key string, def []byte) ([]byte, error) {
	return getRow(s.db, key, def)
}

// Set reemplaza el valor de key.
func (s *Store) Set(key string, value []byte) error {
	return setRow(s.db, key, value)
}

// RunTx ejecuta fn sobre un KV atado a una transacción: o todos los Set
// quedan confirmados o ninguno. Un fallo de escritura no deja commit parcial.
func (s *Store) RunTx(ctx context.Context, fn func(kv KV) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %v", domain.ErrPersistence, err)
	}
	if err := fn(&txKV{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrPersistence, err)
	}
	return nil
}

// txKV implementa KV sobre una transacción abierta.
type txKV struct {
	tx *sql.Tx
}

func (t *txKV) Get(key string, def []byte) ([]byte, error) { return getRow(t.tx, key, def) }
func (t *txKV) Set(key string, value []byte) error         { return setRow(t.tx, key, value) }

// querier cubre *sql.DB y *sql.Tx.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
}

func getRow(q querier, key string, def []byte) ([]byte, error) {
	var value []byte
	err := q.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %q: %v", domain.ErrPersistence, key, err)
	}
	return value, nil
}

func setRow(q querier, key string, value []byte) error {
	_, err := q.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: set %q: %v", domain.ErrPersistence, key, err)
	}
	return nil
}
