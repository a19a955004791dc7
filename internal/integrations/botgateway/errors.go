package botgateway

import "errors"

var (
	// ErrChatNotFound возвращается, когда шлюз не знает такой чат
	// (клиент не начинал диалог с ботом или заблокировал его)
	ErrChatNotFound = errors.New("botgateway: chat not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("botgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("botgateway client: invalid response")
)
