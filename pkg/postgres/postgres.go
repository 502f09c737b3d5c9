package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// профиль оператора одна строка в settings, большой пул не нужен
	maxConns        = 4
	maxConnIdleTime = 5 * time.Minute
	pingTimeout     = 5 * time.Second
)

// ErrSettingsMissing таблица settings не создана, миграции не применены
var ErrSettingsMissing = errors.New("postgres: settings table is missing")

// NewPostgresDB открывает пул соединений для хранилища профиля оператора.
// Проверяет доступность базы и наличие таблицы settings.
func NewPostgresDB(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfgPool, err := poolConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("postgres: не удалось открыть пул профиля: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("postgres: база профиля недоступна: %w", err)
	}

	var exists bool
	if err := dbpool.QueryRow(pingCtx, `SELECT to_regclass('public.settings') IS NOT NULL`).Scan(&exists); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("postgres: проверка таблицы settings: %w", err)
	}
	if !exists {
		dbpool.Close()
		return nil, ErrSettingsMissing
	}

	return dbpool, nil
}

// poolConfig разбирает DATABASE_URL; явные pool_max_conns в строке подключения не переопределяются
func poolConfig(databaseURL string) (*pgxpool.Config, error) {
	cfgPool, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: некорректный DATABASE_URL: %w", err)
	}
	if !strings.Contains(databaseURL, "pool_max_conns") {
		cfgPool.MaxConns = maxConns
	}
	cfgPool.MaxConnIdleTime = maxConnIdleTime
	return cfgPool, nil
}
