package calendar

import "errors"

var (
	// ErrGatewayUnavailable хранилище недоступно или не ответило за отведенное время
	// Временная ошибка: операцию можно повторить целиком
	ErrGatewayUnavailable = errors.New("calendar gateway: event store unavailable")

	// ErrGatewayRejected хранилище отказалось принять запись (авторизация, квота)
	// Повтор той же попытки не поможет
	ErrGatewayRejected = errors.New("calendar gateway: event store rejected the request")
)
