package logger

// Logger is the application-wide logging contract. Concrete backends
// live in subpackages (zap_adapter); consumers depend on this interface
// or on a narrowed per-package copy of it.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value interface{}
}

func NewField(key string, value interface{}) Field {
	return Field{
		Key:   key,
		Value: value,
	}
}
