// Подключение к PostgreSQL и миграции.
//
// Раньше здесь жила глобальная переменная DB — теперь хэндл базы
// конструируется явно при старте и передаётся в репозитории,
// а закрывается в main при завершении процесса.
package config

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// NewDB открывает подключение к базе данных, проверяет его доступность,
// настраивает пул соединений и (если включено) применяет миграции.
//
// Если миграции уже применены, migrate.ErrNoChange не считается ошибкой.
// Возвращённый *sql.DB обязан закрыть вызывающий.
func NewDB(db DBConfig, migrations MigrationsConfig) (*sql.DB, error) {
	conn, err := sql.Open("pgx", db.DSN)
	if err != nil {
		return nil, fmt.Errorf("открытие подключения к БД: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("проверка подключения к БД: %w", err)
	}

	// настройки пула
	if db.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(db.MaxOpenConns)
	}
	if db.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(db.MaxIdleConns)
	}
	if db.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(db.ConnMaxLifetime.Std())
	}
	if db.ConnMaxIdleTime > 0 {
		conn.SetConnMaxIdleTime(db.ConnMaxIdleTime.Std())
	}

	if migrations.Enabled {
		if err := runMigrations(conn, migrations.Path); err != nil {
			conn.Close()
			return nil, err
		}
	}

	return conn, nil
}

// runMigrations применяет миграции golang-migrate поверх открытого подключения.
func runMigrations(conn *sql.DB, path string) error {
	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("создание драйвера миграций: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("создание миграций: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("применение миграций: %w", err)
	}

	return nil
}
