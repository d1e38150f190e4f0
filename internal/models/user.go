// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи и хэш пароля.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           int64  `json:"id"`        // Уникальный идентификатор пользователя
	Username     string `json:"username"`  // Имя пользователя (уникальное)
	PasswordHash string `json:"-"`         // Хэш пароля пользователя, наружу не отдается
	IsActive     bool   `json:"is_active"` // Флаг активности учетной записи
}
