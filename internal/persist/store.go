// internal/persist/store.go
package persist

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrations embed.FS

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var ErrSaveNotFound = errors.New("save not found")

// Stats — счётчики для внешних систем достижений.
type Stats struct {
	Overheats  int
	Explosions int
}

// SaveInfo describes a stored save without its payload.
type SaveInfo struct {
	ID        string
	Name      string
	Revision  byte
	Tick      int64
	CreatedAt time.Time
	Size      int
	Stats     Stats
}

// Store — слоты сохранений в SQLite.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenStore opens (creating if needed) the database at path and applies migrations.
func OpenStore(ctx context.Context, path string, log *zap.Logger) (*Store, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite допускает одного писателя; для :memory: это ещё и одна общая БД.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, log: log}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores an encoded save under name and returns the new slot ID.
func (s *Store) Save(ctx context.Context, name string, save *SaveFile, stats Stats) (string, error) {
	data, err := save.Encode()
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("save begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO saves (id, name, revision, tick, created_at, data) VALUES (?, ?, ?, ?, ?, ?)`,
		id, name, int(Revision), save.Tick, now.UnixNano(), data,
	); err != nil {
		return "", fmt.Errorf("save insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO overheat_stats (save_id, overheats, explosions) VALUES (?, ?, ?)`,
		id, stats.Overheats, stats.Explosions,
	); err != nil {
		return "", fmt.Errorf("save stats: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("save commit: %w", err)
	}

	s.log.Info("save written",
		zap.String("id", id),
		zap.String("name", name),
		zap.Int64("tick", save.Tick),
		zap.Int("bytes", len(data)),
	)
	return id, nil
}

// Load returns the decoded save and its metadata.
func (s *Store) Load(ctx context.Context, id string) (*SaveFile, SaveInfo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT s.id, s.name, s.revision, s.tick, s.created_at, s.data,
		        COALESCE(o.overheats, 0), COALESCE(o.explosions, 0)
		   FROM saves s LEFT JOIN overheat_stats o ON o.save_id = s.id
		  WHERE s.id = ?`, id)

	var (
		info    SaveInfo
		rev     int
		created int64
		data    []byte
	)
	err := row.Scan(&info.ID, &info.Name, &rev, &info.Tick, &created, &data,
		&info.Stats.Overheats, &info.Stats.Explosions)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, SaveInfo{}, fmt.Errorf("%w: %s", ErrSaveNotFound, id)
	}
	if err != nil {
		return nil, SaveInfo{}, fmt.Errorf("load %s: %w", id, err)
	}
	info.Revision = byte(rev)
	info.CreatedAt = time.Unix(0, created).UTC()
	info.Size = len(data)

	save, err := Decode(data)
	if err != nil {
		return nil, SaveInfo{}, fmt.Errorf("load %s: %w", id, err)
	}
	return save, info, nil
}

// List returns all saves, newest first.
func (s *Store) List(ctx context.Context) ([]SaveInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.name, s.revision, s.tick, s.created_at, length(s.data),
		        COALESCE(o.overheats, 0), COALESCE(o.explosions, 0)
		   FROM saves s LEFT JOIN overheat_stats o ON o.save_id = s.id
		  ORDER BY s.seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var out []SaveInfo
	for rows.Next() {
		var (
			info    SaveInfo
			rev     int
			created int64
		)
		if err := rows.Scan(&info.ID, &info.Name, &rev, &info.Tick, &created, &info.Size,
			&info.Stats.Overheats, &info.Stats.Explosions); err != nil {
			return nil, fmt.Errorf("list saves: %w", err)
		}
		info.Revision = byte(rev)
		info.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, info)
	}
	return out, rows.Err()
}

// Delete removes a save and its stats.
func (s *Store) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM overheat_stats WHERE save_id = ?`, id); err != nil {
		return fmt.Errorf("delete stats %s: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM saves WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrSaveNotFound, id)
	}
	return tx.Commit()
}
