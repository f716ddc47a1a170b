// Package storage — утилиты работы с локальным каталогом данных.
package storage

import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
)

// dirPerm ограничивает доступ к каталогу владельцем процесса.
const dirPerm = 0o700

// EnsureDir гарантирует наличие каталога dir. Повторный вызов для существующего
// каталога ничего не делает. Если по пути лежит обычный файл, возвращается ошибка.
func EnsureDir(dir string) error {
	clean := filepath.Clean(dir)
	if clean == "." || clean == "" {
		return nil
	}
	if err := os.MkdirAll(clean, dirPerm); err != nil {
		return errors.Wrapf(err, "create dir %s", clean)
	}
	info, err := os.Stat(clean)
	if err != nil {
		return errors.Wrapf(err, "stat dir %s", clean)
	}
	if !info.IsDir() {
		return errors.Errorf("path %s exists and is not a directory", clean)
	}
	return nil
}
