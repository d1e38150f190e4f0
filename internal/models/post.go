// Package models содержит доменные структуры публикаций,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Post представляет собой публикацию пользователя.
// Связь с автором хранится явным внешним ключом OwnerID.
type Post struct {
	ID      int64  `json:"id"`       // Идентификатор публикации
	Title   string `json:"title"`    // Заголовок
	Content string `json:"content"`  // Текст публикации
	OwnerID int64  `json:"owner_id"` // Идентификатор автора
}

// DummyPost используется для приёма данных публикации из JSON-запроса,
// прежде чем конвертировать их в Post.
type DummyPost struct {
	Title   string `json:"title" validate:"required,max=255"`    // Заголовок (до 255 символов)
	Content string `json:"content" validate:"required,max=4000"` // Текст (до 4000 символов)
}
