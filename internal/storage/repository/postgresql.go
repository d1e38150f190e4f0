// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями, публикациями, комментариями и отметками
// "нравится"/"избранное". Предоставляет методы создания, чтения и
// атомарного переключения отметок.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища. Сервисы и обработчики сопоставляют их
// через errors.Is, не разбирая текст.
var (
	// ErrUserNotFound возвращается, когда пользователь с таким именем не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken возвращается при попытке зарегистрировать занятое имя.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrPostNotFound возвращается, когда публикация с таким ID не найдена.
	ErrPostNotFound = errors.New("post not found")
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и публикациями.
//
// Пул database/sql выдаёт каждому запросу отдельное соединение,
// поэтому методы безопасны для конкурентного вызова.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	return nil
}
