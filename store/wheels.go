// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"

	"github.com/danielhkuo/quickly-spin/wheel"
)

// Keys under a wheel's namespace
const (
	KeyOptions  = "spinnerOptions"
	KeySettings = "spinnerSettings"
	KeyRotation = "spinnerRotation"
)

const (
	wheelTable   = "wheel"
	colID        = "id"
	colName      = "name"
	colCreatedAt = "created_at"
)

var ErrWheelNotFound = errors.New("wheel not found")

// Wheel is the metadata row of a wheel.
type Wheel struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Store persists wheels. Option lists and settings are stored as JSON under
// the wheel's KV namespace and normalized on the way in and out.
type Store struct {
	db        *sql.DB
	sb        sq.StatementBuilderType
	kv        KV
	cfg       wheel.Config
	txManager trm.Manager
	getter    *trmsql.CtxGetter
}

// New creates a Store on conn. cfg supplies the seed list and palette.
func New(conn *sql.DB, dbType string, cfg wheel.Config) *Store {
	return &Store{
		db:        conn,
		sb:        builder(dbType),
		kv:        NewSQLKV(conn, dbType),
		cfg:       cfg,
		txManager: manager.Must(trmsql.NewDefaultFactory(conn)),
		getter:    trmsql.DefaultCtxGetter,
	}
}

// Config returns the wheel tuning the store seeds with.
func (s *Store) Config() wheel.Config {
	return s.cfg
}

// CreateWheel inserts a wheel seeded with the default options and settings.
// The row and its seeded state are written in one transaction.
func (s *Store) CreateWheel(ctx context.Context, id, name string) (Wheel, error) {
	w := Wheel{ID: id, Name: name, CreatedAt: time.Now().UTC()}

	sqlStr, args, err := s.sb.Insert(wheelTable).
		Columns(colID, colName, colCreatedAt).
		Values(w.ID, w.Name, w.CreatedAt).
		ToSql()
	if err != nil {
		return Wheel{}, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getter.DefaultTrOrDB(txCtx, s.db).ExecContext(txCtx, sqlStr, args...); err != nil {
			return fmt.Errorf("insert wheel: %w", err)
		}
		if err := s.SaveOptions(txCtx, id, s.cfg.SeedOptions()); err != nil {
			return err
		}
		if err := s.SaveSettings(txCtx, id, wheel.DefaultSettings()); err != nil {
			return err
		}
		return s.SaveRotation(txCtx, id, 0)
	})
	if err != nil {
		return Wheel{}, err
	}

	return w, nil
}

// GetWheel loads wheel metadata. Returns ErrWheelNotFound for unknown ids.
func (s *Store) GetWheel(ctx context.Context, id string) (Wheel, error) {
	sqlStr, args, err := s.sb.Select(colID, colName, colCreatedAt).
		From(wheelTable).
		Where(sq.Eq{colID: id}).
		ToSql()
	if err != nil {
		return Wheel{}, err
	}

	var w Wheel
	err = s.getter.DefaultTrOrDB(ctx, s.db).QueryRowContext(ctx, sqlStr, args...).Scan(&w.ID, &w.Name, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Wheel{}, ErrWheelNotFound
	}
	if err != nil {
		return Wheel{}, fmt.Errorf("load wheel: %w", err)
	}

	return w, nil
}

// DeleteWheel removes a wheel and all of its persisted state.
func (s *Store) DeleteWheel(ctx context.Context, id string) error {
	wheelSQL, wheelArgs, err := s.sb.Delete(wheelTable).Where(sq.Eq{colID: id}).ToSql()
	if err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.kv.DeleteNamespace(txCtx, id); err != nil {
			return fmt.Errorf("delete wheel state: %w", err)
		}

		res, err := s.getter.DefaultTrOrDB(txCtx, s.db).ExecContext(txCtx, wheelSQL, wheelArgs...)
		if err != nil {
			return fmt.Errorf("delete wheel: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrWheelNotFound
		}
		return nil
	})
}

// LoadOptions returns the persisted option list. A missing or unreadable
// list yields the seed list; a persisted empty list stays empty.
func (s *Store) LoadOptions(ctx context.Context, id string) ([]wheel.Option, error) {
	raw, ok, err := s.kv.Get(ctx, id, KeyOptions)
	if err != nil {
		return nil, fmt.Errorf("load options: %w", err)
	}
	if !ok {
		return s.cfg.SeedOptions(), nil
	}

	opts, err := wheel.DecodeOptions([]byte(raw), s.cfg)
	if err != nil {
		slog.Warn("Discarding unreadable options", "wheel_id", id, "error", err)
		return s.cfg.SeedOptions(), nil
	}
	return opts, nil
}

// SaveOptions normalizes and persists the full option list.
func (s *Store) SaveOptions(ctx context.Context, id string, opts []wheel.Option) error {
	if opts == nil {
		opts = []wheel.Option{}
	}
	data, err := json.Marshal(wheel.NormalizeOptions(opts, s.cfg))
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, id, KeyOptions, string(data)); err != nil {
		return fmt.Errorf("save options: %w", err)
	}
	return nil
}

// LoadSettings merges persisted settings onto the defaults.
func (s *Store) LoadSettings(ctx context.Context, id string) (wheel.Settings, error) {
	raw, ok, err := s.kv.Get(ctx, id, KeySettings)
	if err != nil {
		return wheel.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if !ok {
		return wheel.DefaultSettings(), nil
	}

	settings, err := wheel.DecodeSettings([]byte(raw), wheel.DefaultSettings())
	if err != nil {
		slog.Warn("Discarding unreadable settings", "wheel_id", id, "error", err)
		return wheel.DefaultSettings(), nil
	}
	return settings, nil
}

// SaveSettings persists clamped settings.
func (s *Store) SaveSettings(ctx context.Context, id string, settings wheel.Settings) error {
	data, err := json.Marshal(settings.Normalize())
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, id, KeySettings, string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveConfig replaces both the option list and the settings. Either both
// are written or neither is.
func (s *Store) SaveConfig(ctx context.Context, id string, opts []wheel.Option, settings wheel.Settings) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.SaveOptions(txCtx, id, opts); err != nil {
			return err
		}
		return s.SaveSettings(txCtx, id, settings)
	})
}

// LoadRotation returns the last resting angle, 0 when absent or unreadable.
func (s *Store) LoadRotation(ctx context.Context, id string) (float64, error) {
	raw, ok, err := s.kv.Get(ctx, id, KeyRotation)
	if err != nil {
		return 0, fmt.Errorf("load rotation: %w", err)
	}
	if !ok {
		return 0, nil
	}
	r, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("Discarding unreadable rotation", "wheel_id", id, "value", raw)
		return 0, nil
	}
	return wheel.NormalizeAngle(r), nil
}

// SaveRotation persists the normalized rotation.
func (s *Store) SaveRotation(ctx context.Context, id string, rotation float64) error {
	value := strconv.FormatFloat(wheel.NormalizeAngle(rotation), 'g', -1, 64)
	if err := s.kv.Set(ctx, id, KeyRotation, value); err != nil {
		return fmt.Errorf("save rotation: %w", err)
	}
	return nil
}

// LoadState assembles the wheel state and settings for id.
func (s *Store) LoadState(ctx context.Context, id string) (wheel.State, wheel.Settings, error) {
	opts, err := s.LoadOptions(ctx, id)
	if err != nil {
		return wheel.State{}, wheel.Settings{}, err
	}
	settings, err := s.LoadSettings(ctx, id)
	if err != nil {
		return wheel.State{}, wheel.Settings{}, err
	}
	rotation, err := s.LoadRotation(ctx, id)
	if err != nil {
		return wheel.State{}, wheel.Settings{}, err
	}

	return wheel.State{Options: opts, Rotation: rotation, Mode: settings.Mode()}, settings, nil
}
