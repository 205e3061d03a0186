package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	got := dsn(Config{User: "catalog", Pass: "s3cret", Host: "db", Port: "3306", Name: "musicdb"})
	assert.Equal(t,
		"catalog:s3cret@tcp(db:3306)/musicdb?charset=utf8mb4&collation=utf8mb4_bin&parseTime=true&loc=UTC",
		got)
}

func TestDSNPasswordless(t *testing.T) {
	got := dsn(Config{User: "catalog", Host: "localhost", Port: "3306", Name: "musicdb"})
	assert.Equal(t,
		"catalog@tcp(localhost:3306)/musicdb?charset=utf8mb4&collation=utf8mb4_bin&parseTime=true&loc=UTC",
		got)
}
