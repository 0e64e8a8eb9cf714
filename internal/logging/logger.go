package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/fittrack/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultMaxSizeMB = 50

type LoggerSetupParams struct {
	LogFileName   string
	LogToStdout   bool
	LogLevel      string
	LogFormatJSON bool
	Environment   string

	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string

	// rotation of LogFileName; zero backups and age keep rotated files forever
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup configures the global logrus logger used by the service and the seed command.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		if err := setupSentry(params); err != nil {
			logrus.Errorf("sentry init: %s", err)
		} else {
			logrus.Infof("sentry set up for [%s]", params.Environment)
		}
	}

	logrus.SetOutput(output(params))
}

func setupSentry(params LoggerSetupParams) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              params.SentryDSN,
		Environment:      params.Environment,
		ServerName:       params.SentryServerName,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return err
	}
	logrus.AddHook(NewSentryHook(ErrorLevels))
	return nil
}

// output picks stdout, the rotated log file, or both.
func output(params LoggerSetupParams) io.Writer {
	if params.LogFileName == "" {
		logrus.Debugln("logging to stdout only")
		return os.Stdout
	}

	logFile := rotatedFile(params)
	if !params.LogToStdout {
		logrus.Debugf("logging to [%s]", logFile.Filename)
		return logFile
	}

	logrus.Debugf("logging to stdout and [%s]", logFile.Filename)
	return pkg.NewCombinedWriter(os.Stdout, logFile)
}

func rotatedFile(params LoggerSetupParams) *lumberjack.Logger {
	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	maxSize := params.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}

	return &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxSize,
		MaxBackups: params.MaxBackups,
		MaxAge:     params.MaxAgeDays,
		LocalTime:  false, // UTC timestamps in rotated names
		Compress:   true,
	}
}

// GetLevel parses a config log level. Unknown values fall back to trace.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
