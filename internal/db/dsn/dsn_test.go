package dsn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beacon-foundation/beacon/internal/config"
	"github.com/beacon-foundation/beacon/internal/db/dsn"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		db   config.DB
		want string
	}{
		{
			name: "mysql",
			db: config.DB{
				Engine:   dsn.EngineMySQL,
				User:     "beacon",
				Password: "secret",
				Host:     "db.local",
				Port:     3306,
				Name:     "beacon",
				Extras:   "parseTime=true",
			},
			want: "beacon:secret@tcp(db.local:3306)/beacon?parseTime=true",
		},
		{
			name: "postgres",
			db: config.DB{
				Engine:   dsn.EnginePostgres,
				User:     "beacon",
				Password: "secret",
				Host:     "db.local",
				Port:     5432,
				Name:     "beacon",
				Extras:   "sslmode=disable",
			},
			want: "host=db.local user=beacon password=secret dbname=beacon port=5432 sslmode=disable",
		},
		{
			name: "sqlite with path",
			db: config.DB{
				Engine: dsn.EngineSQLite,
				Path:   "/var/lib/beacon/beacon.db",
			},
			want: "/var/lib/beacon/beacon.db",
		},
		{
			name: "sqlite without path falls back to memory",
			db: config.DB{
				Engine: dsn.EngineSQLite,
			},
			want: ":memory:",
		},
		{
			name: "unknown engine defaults to mysql format",
			db: config.DB{
				User:     "u",
				Password: "p",
				Host:     "h",
				Port:     3306,
				Name:     "n",
			},
			want: "u:p@tcp(h:3306)/n?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{DB: tt.db}
			assert.Equal(t, tt.want, dsn.Create(&cfg))
		})
	}
}
