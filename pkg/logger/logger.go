package logger

// Logger минимальный контракт структурного логгера, который используют все слои приложения.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field пара ключ-значение для структурного лога.
type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// ErrorField сокращение для самого частого поля.
func ErrorField(err error) Field {
	return Field{Key: "error", Value: err}
}
