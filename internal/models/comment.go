// Package models содержит доменные структуры комментариев.
package models

// Comment представляет собой комментарий к публикации.
// Связи с публикацией и автором хранятся явными внешними ключами.
type Comment struct {
	ID      int64  `json:"id"`       // Идентификатор комментария
	Content string `json:"content"`  // Текст комментария
	PostID  int64  `json:"post_id"`  // Идентификатор публикации
	OwnerID int64  `json:"owner_id"` // Идентификатор автора
}

// DummyComment используется для приёма данных комментария из JSON-запроса.
type DummyComment struct {
	Content string `json:"content" validate:"required,max=500"` // Текст комментария (до 500 символов)
}
