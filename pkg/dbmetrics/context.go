package dbmetrics

import "context"

type ctxKey int

const executorKey ctxKey = 0

// WithExecutor кладет активную транзакцию в context
// Репозитории достают её через GetExecutor и выполняют запросы внутри транзакции
func WithExecutor(ctx context.Context, ex TxExecutor) context.Context {
	return context.WithValue(ctx, executorKey, ex)
}

// GetExecutor возвращает executor из context, если там есть активная транзакция,
// иначе fallback (обычно основной пул соединений репозитория)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if ex, ok := ctx.Value(executorKey).(TxExecutor); ok {
		return ex
	}
	return fallback
}

// IsInTransaction возвращает true, если в context есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey).(TxExecutor)
	return ok
}
