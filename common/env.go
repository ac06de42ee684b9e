package common

import (
  "strings"
  "sync"

  "github.com/knadh/koanf/providers/env"
  "github.com/knadh/koanf/v2"
)

var (
  k     = koanf.New(".")
  kOnce sync.Once
)

func loadEnv() {
  kOnce.Do(func() {
    err := k.Load(env.Provider("", ".", func(s string) string {
      return s
    }), nil)
    if err != nil {
      Logger.Fatal().Err(err).Msg("environment can not be loaded")
    }
  })
}

func GetEnvString(key string) string {
  loadEnv()
  return k.String(key)
}

func GetEnvInt(key string) int {
  loadEnv()
  return k.Int(key)
}

// GetEnvArray splits a space separated variable, e.g. ASYNQ_QUEUE="scrapers,10 default,1".
func GetEnvArray(key string) []string {
  loadEnv()
  return strings.Fields(k.String(key))
}
