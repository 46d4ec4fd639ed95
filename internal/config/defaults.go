package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:        "~/.config/cochrono",
			SQLiteFile:  "cochrono.db",
			JournalMode: "wal",
		},
		Locale: LocaleConfig{
			Language: "en",
		},
		Display: DisplayConfig{
			MaxEventsPerBlock: 3,
			Color:             true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
