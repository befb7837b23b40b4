/*
Package bindings loads and persists textparser.Bindings.

# Files

Bindings can be read from YAML, JSON and dotenv files:

	b, err := bindings.FromFile("values.yaml")

Nested maps are flattened into dotted names, so

	db:
	  host: localhost

binds "db.host". Lists are rejected. LoadFiles merges several files in
order, later files winning.

# Stores

A Store keeps named binding sets. Three implementations are provided:

  - MemoryStore: in-process, for tests and short-lived tools
  - SQLiteStore: single-process persistence on a local file
  - RedisStore: shared sets in Redis, one hash per set

All stores are safe for concurrent use and return ErrNotFound for a
missing binding and ErrStoreClosed after Close.

	store, err := bindings.NewSQLiteStore("bindings.db")
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()

	_ = store.Save(ctx, "prod", "host", "example.com")
	b, _ := store.Load(ctx, "prod")
	out, err := textparser.Scan(text, d, b)
*/
package bindings
