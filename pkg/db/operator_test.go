package db_test

import (
	"testing"

	"github.com/gnames/metroreg/internal/iodb"
	"github.com/gnames/metroreg/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestPgxOperatorImplementsInterface(t *testing.T) {
	var op db.Operator = iodb.NewPgxOperator()
	assert.Nil(t, op.Pool(), "no pool before Connect")
	assert.NoError(t, op.Close(), "Close without Connect is a no-op")
}
