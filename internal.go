package structlog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/utils"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

func (s *Service) initializeRollingFileLogger(exeName string) *lumberjack.Logger {
	if exeName == emptyString {
		exeName = "app"
	}

	path := filepath.Join(s.WorkingDir, s.LoggingConfig.RelLogFileDir, exeName+".log")

	return &lumberjack.Logger{
		Filename:   path,
		MaxBackups: s.LoggingConfig.LogFileMaxBackups,
		MaxAge:     s.LoggingConfig.LogFileMaxAgeDays,
		MaxSize:    s.LoggingConfig.LogFileMaxSizeMB,
		Compress:   s.LoggingConfig.LogFileCompress,
	}
}

func (s *Service) initializeWriters() ([]io.Writer, error) {
	const op errors.Op = "structlog.Service.initializeWriters"
	cfg := s.LoggingConfig
	var writers []io.Writer

	if cfg.FileLogging {
		if s.WorkingDir == emptyString {
			return nil, errors.New(op).Msg(errMsgWorkingDirUnset)
		}
		dir := filepath.Join(s.WorkingDir, cfg.RelLogFileDir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgLogDir)
		}
		exeName, err := utils.ExecName(true)
		if err != nil {
			return nil, errors.New(op).Err(err).Msg(errMsgExecName)
		}
		s.fileWriter = s.initializeRollingFileLogger(exeName)
		writers = append(writers, s.fileWriter)
	}
	if cfg.ConsoleLogging {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    cfg.ConsoleNoColor,
			TimeFormat: cfg.ConsoleTimeFormat,
		})
	}
	if len(writers) == 0 {
		return nil, errors.New(op).Msg(errMsgNoChannels)
	}
	return writers, nil
}
