package perceptron

import "go.uber.org/zap"

var logger = zap.NewNop().Sugar()

// SetLogger sets the logger for the package.  If l is nil, logging is
// disabled.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Sugar()
}

// SetLog enables or disables logging.  Enabled logging writes to a
// development logger on stderr.
func SetLog(enable bool) {
	if !enable {
		SetLogger(nil)
		return
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		// Cannot happen with the default development config.
		panic(err)
	}
	SetLogger(l)
}

// Log logs the given message if logging is enabled.
func Log(f string, args ...interface{}) {
	logger.Debugf(f, args...)
}
