package config

import "time"

const defaultDotEnvFile = ".env"

// Defaults applied before any user supplied source.
const (
	DefaultChunkSize         = 30
	DefaultCategoryPrefix    = "CSE"
	DefaultCategorySeparator = "-"
	DefaultTelegramBaseURL   = "https://api.telegram.org"
	DefaultRosterPath        = "data.xlsx"
	DefaultUserLogPath       = "user_data.xlsx"

	DefaultAdapterRequestTimeout = 10 * time.Second
	DefaultServerRequestTimeout  = 15 * time.Second
	DefaultPollTimeout           = 30 * time.Second
	DefaultRetryInterval         = 3 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ChunkSize:         DefaultChunkSize,
			CategoryPrefix:    DefaultCategoryPrefix,
			CategorySeparator: DefaultCategorySeparator,
			LogLevel:          "debug",
		},
		Storage: Storage{
			Roster:  Roster{Path: DefaultRosterPath},
			UserLog: UserLog{Path: DefaultUserLogPath},
		},
		Adapter: Adapter{
			BaseURL:        DefaultTelegramBaseURL,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
		Server: Server{
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Workers: Workers{
			PollTimeout:   DefaultPollTimeout,
			RetryInterval: DefaultRetryInterval,
		},
	}
}
