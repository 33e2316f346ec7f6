package configslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) logger.
// SLog aynı logger'ın sugared hali, format string'li kısa mesajlar için.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

func init() {
	// Init çağrılmadan import edilen paketler için güvenli varsayılan.
	Log = zap.NewNop()
	SLog = Log.Sugar()
}

// Init logger'ı uygulama ortamına göre kurar. APP_ENV=production ise
// JSON, aksi halde geliştirme formatı kullanılır.
func Init(env string) error {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		return err
	}
	Log = logger
	SLog = logger.Sugar()
	return nil
}

// Sync buffer'daki log kayıtlarını boşaltır. main'de defer edilir.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
