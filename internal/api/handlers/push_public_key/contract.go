package push_public_key

type KeyProvider interface {
	Enabled() bool
	PublicKey() string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
