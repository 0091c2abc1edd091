package main

import "time"

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	DeliveryDelay   time.Duration `env:"DELIVERY_DELAY,default=500ms"`
	ReadDelayMin    time.Duration `env:"READ_DELAY_MIN,default=1s"`
	ReadDelayMax    time.Duration `env:"READ_DELAY_MAX,default=4s"`
	TypingExpiry    time.Duration `env:"TYPING_EXPIRY,default=3s"`
	SimulateEvery   time.Duration `env:"SIMULATE_EVERY,default=5s"`
	DashboardEvery  time.Duration `env:"DASHBOARD_EVERY,default=10s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=2s"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true"`
	CensorCharacter string        `env:"CENSOR_CHARACTER,default=*"`
	LimitHistory    *int          `env:"LIMIT_HISTORY"`
}

// censorRune narrows the configured replacement down to a single rune.
func (c Config) censorRune() rune {
	for _, r := range c.CensorCharacter {
		return r
	}
	return '*'
}
