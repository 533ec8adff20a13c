package placeinfo

import "errors"

// ErrInvalidURL возвращается, когда строку нельзя разобрать как URL
var ErrInvalidURL = errors.New("invalid URL")
