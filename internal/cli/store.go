package cli

import (
	"github.com/randalmurphal/textparser/pkg/textparser/bindings"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// storeFlags select the binding store: SQLite by default, Redis when
// an address is given.
type storeFlags struct {
	path      string
	redisAddr string
	redisDB   int
	keyPrefix string
}

func (f *storeFlags) register(cmd *cobra.Command, defaultPath string) {
	cmd.PersistentFlags().StringVar(&f.path, "store", defaultPath, "SQLite binding store path")
	cmd.PersistentFlags().StringVar(&f.redisAddr, "redis", "", "Redis address (host:port); overrides --store")
	cmd.PersistentFlags().IntVar(&f.redisDB, "redis-db", 0, "Redis database number")
	cmd.PersistentFlags().StringVar(&f.keyPrefix, "redis-prefix", bindings.DefaultRedisKeyPrefix, "Redis key prefix")
}

// open returns the selected store and a function that releases it.
func (f *storeFlags) open() (bindings.Store, func(), error) {
	if f.redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: f.redisAddr, DB: f.redisDB})
		store, err := bindings.NewRedisStore(bindings.RedisConfig{Client: client, KeyPrefix: f.keyPrefix})
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		return store, func() {
			store.Close()
			client.Close()
		}, nil
	}

	store, err := bindings.NewSQLiteStore(f.path)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}
