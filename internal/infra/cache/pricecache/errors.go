package pricecache

import "errors"

var (
	// ErrBackend возвращается при ошибке внешнего хранилища кэша
	ErrBackend = errors.New("pricecache: backend error")

	// ErrDecode возвращается, когда значение в кэше не удалось разобрать
	ErrDecode = errors.New("pricecache: failed to decode entry")
)
