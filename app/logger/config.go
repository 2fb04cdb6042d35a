package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogFormat int

const (
	ColorizedOutput LogFormat = iota
	PlaintextOutput
	JSONOutput
)

type NamedLevel struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type Config struct {
	Production     bool         `yaml:"production"`
	DefaultLevel   string       `yaml:"defaultLevel"`
	Levels         []NamedLevel `yaml:"levels"` // first match will be used
	AddOutputPaths []string     `yaml:"outputPaths"`
	DisableStdErr  bool         `yaml:"disableStdErr"`
	Format         LogFormat    `yaml:"format"`
}

func (l Config) zapConfig() zap.Config {
	var conf zap.Config
	if l.Production {
		conf = zap.NewProductionConfig()
	} else {
		conf = zap.NewDevelopmentConfig()
	}
	encConfig := conf.EncoderConfig
	switch l.Format {
	case PlaintextOutput:
		encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		conf.Encoding = "console"
	case JSONOutput:
		encConfig.MessageKey = "msg"
		encConfig.TimeKey = "ts"
		encConfig.LevelKey = "level"
		encConfig.NameKey = "logger"
		encConfig.CallerKey = "caller"
		encConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		conf.Encoding = "json"
	default:
		conf.Encoding = "console"
		encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	conf.EncoderConfig = encConfig

	conf.OutputPaths = append(conf.OutputPaths, l.AddOutputPaths...)
	if l.DisableStdErr {
		paths := conf.OutputPaths[:0]
		for _, path := range conf.OutputPaths {
			if path != "stderr" {
				paths = append(paths, path)
			}
		}
		conf.OutputPaths = paths
	}
	if defaultLevel, err := zap.ParseAtomicLevel(l.DefaultLevel); err == nil {
		conf.Level = defaultLevel
	}
	// the main logger needs the minimum level of all named loggers
	for _, v := range l.Levels {
		if lev, err := zap.ParseAtomicLevel(v.Level); err == nil && lev.Level() < conf.Level.Level() {
			conf.Level.SetLevel(lev.Level())
		}
	}
	return conf
}

// ApplyGlobal builds the logger from config and makes it default for all named loggers
func (l Config) ApplyGlobal() error {
	lg, err := l.zapConfig().Build()
	if err != nil {
		return fmt.Errorf("can't build logger: %w", err)
	}
	SetDefault(lg)
	SetNamedLevels(l.Levels)
	return nil
}

// LevelsFromStr parses a string of the form "name1=DEBUG;prefix*=WARN;*=ERROR" into a slice of NamedLevel
// a part without a name applies to all loggers, invalid parts are skipped
func LevelsFromStr(s string) (levels []NamedLevel) {
	for _, kv := range strings.Split(s, ";") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		key, value, found := strings.Cut(kv, "=")
		if !found {
			key, value = "*", kv
		}
		if _, err := zap.ParseAtomicLevel(value); err != nil {
			Default().Warn("can't parse log level", zap.String("level", kv), zap.Error(err))
			continue
		}
		levels = append(levels, NamedLevel{Name: strings.TrimSpace(key), Level: strings.TrimSpace(value)})
	}
	return levels
}
