package common

import (
  "fmt"
)

// AsynqLogger routes asynq server logs to the zerolog logger.
type AsynqLogger struct{}

func (l *AsynqLogger) Debug(args ...interface{}) {
  Logger.Debug().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *AsynqLogger) Info(args ...interface{}) {
  Logger.Info().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *AsynqLogger) Warn(args ...interface{}) {
  Logger.Warn().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *AsynqLogger) Error(args ...interface{}) {
  Logger.Error().Str("component", "asynq").Msg(fmt.Sprint(args...))
}

func (l *AsynqLogger) Fatal(args ...interface{}) {
  Logger.Fatal().Str("component", "asynq").Msg(fmt.Sprint(args...))
}
