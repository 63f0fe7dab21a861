// Package crypto содержит хеширование содержимого файлов импорта.
package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// ContentHash возвращает hex-encoded BLAKE2b-256 хеш содержимого.
// Используется для того, чтобы не импортировать один и тот же файл дважды.
func ContentHash(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
