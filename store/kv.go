// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"

	"github.com/danielhkuo/quickly-spin/db"
)

const (
	kvTable      = "kv"
	colNamespace = "namespace"
	colKey       = "key"
	colValue     = "value"
	colUpdatedAt = "updated_at"
)

// KV is a namespaced string store. Get reports false for a missing key.
type KV interface {
	Get(ctx context.Context, namespace, key string) (string, bool, error)
	Set(ctx context.Context, namespace, key, value string) error
	DeleteNamespace(ctx context.Context, namespace string) error
}

// SQLKV keeps key-value pairs in the kv table. Calls join the transaction
// carried by ctx, if any.
type SQLKV struct {
	db     *sql.DB
	sb     sq.StatementBuilderType
	getter *trmsql.CtxGetter
}

// NewSQLKV builds a KV on conn using the placeholder style of dbType.
func NewSQLKV(conn *sql.DB, dbType string) *SQLKV {
	return &SQLKV{db: conn, sb: builder(dbType), getter: trmsql.DefaultCtxGetter}
}

func builder(dbType string) sq.StatementBuilderType {
	if dbType == db.TypePostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (s *SQLKV) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	query := s.sb.Select(colValue).
		From(kvTable).
		Where(sq.Eq{colNamespace: namespace, colKey: key})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	err = s.getter.DefaultTrOrDB(ctx, s.db).QueryRowContext(ctx, sqlStr, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (s *SQLKV) Set(ctx context.Context, namespace, key, value string) error {
	query := s.sb.Insert(kvTable).
		Columns(colNamespace, colKey, colValue, colUpdatedAt).
		Values(namespace, key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (" + colNamespace + ", " + colKey + ") DO UPDATE SET " +
			colValue + " = excluded." + colValue + ", " +
			colUpdatedAt + " = excluded." + colUpdatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = s.getter.DefaultTrOrDB(ctx, s.db).ExecContext(ctx, sqlStr, args...)
	return err
}

func (s *SQLKV) DeleteNamespace(ctx context.Context, namespace string) error {
	sqlStr, args, err := s.sb.Delete(kvTable).
		Where(sq.Eq{colNamespace: namespace}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.getter.DefaultTrOrDB(ctx, s.db).ExecContext(ctx, sqlStr, args...)
	return err
}
