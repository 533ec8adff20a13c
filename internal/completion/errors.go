package completion

import (
	"errors"
	"fmt"
	"net"
)

// Kind различает причины отказа внешнего сервиса. Используется только в логах.
type Kind string

const (
	// KindTransport - запрос не дошел или ответ не прочитан
	KindTransport Kind = "transport"
	// KindStatus - сервис вернул неуспешный статус
	KindStatus Kind = "status"
	// KindFormat - успешный ответ не содержит сгенерированного текста
	KindFormat Kind = "format"
)

const (
	msgUnreachable   = "AI service is unreachable"
	msgTimeout       = "AI service request timed out"
	msgInvalidFormat = "Invalid response format from API"
)

// Error описывает отказ при обращении к сервису генерации
type Error struct {
	Kind       Kind
	StatusCode int
	// Message - короткое сообщение, пригодное для клиента
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion %s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("completion %s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func transportError(err error) *Error {
	msg := msgUnreachable
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		msg = msgTimeout
	}
	return &Error{Kind: KindTransport, Message: msg, Err: err}
}

func statusError(code int, upstreamMessage string) *Error {
	msg := upstreamMessage
	if msg == "" {
		msg = fmt.Sprintf("API responded with status: %d", code)
	}
	return &Error{Kind: KindStatus, StatusCode: code, Message: msg}
}

func formatError(code int, err error) *Error {
	return &Error{Kind: KindFormat, StatusCode: code, Message: msgInvalidFormat, Err: err}
}
