// Package jwt реализует выпуск и проверку JWT токенов доступа.
//
// Maker определяет интерфейс для создания и разбора токенов с subject-идентификатором
// пользователя. MakerImpl — конкретная реализация с использованием секретного ключа
// и срока жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает подписанный токен с subject = username.
	GenerateToken(username string) (string, error)
	// ParseToken проверяет подпись и срок действия токена и возвращает его claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
//
// Выпуск и проверка токенов не хранят состояния: результат зависит только
// от входных данных и текущего времени, поэтому методы безопасны для
// конкурентного вызова без синхронизации.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
