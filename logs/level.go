package logs

import (
	"log/slog"

	"github.com/reusee/taicalc/cmds"
)

var levelVar = new(slog.LevelVar)

func init() {
	// keep the interactive prompt clean unless asked otherwise
	levelVar.Set(slog.LevelWarn)

	for _, level := range []slog.Level{
		slog.LevelDebug,
		slog.LevelInfo,
		slog.LevelWarn,
		slog.LevelError,
	} {
		name := levelName(level)
		cmds.Define("-log-"+name, cmds.Func(func() {
			levelVar.Set(level)
		}).Desc("set log level to "+name))
	}

	cmds.Define("-log-level", cmds.Func(func(name string) error {
		var level slog.Level
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return err
		}
		levelVar.Set(level)
		return nil
	}).Desc("set log level by name, like debug or WARN+2"))
}

func levelName(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "debug"
	case slog.LevelInfo:
		return "info"
	case slog.LevelWarn:
		return "warn"
	}
	return "error"
}

type Level = *slog.LevelVar

func (Module) Level() Level {
	return levelVar
}
