package submit_contact

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("submit_contact: internal error")
