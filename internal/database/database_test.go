package database_test

import (
	"testing"

	"pizzeria/internal/database"

	"github.com/stretchr/testify/assert"
)

func TestConnectorMissingDSN(t *testing.T) {
	connector := database.NewConnector("")

	db, err := connector.Connect()
	assert.Nil(t, db)
	assert.ErrorIs(t, err, database.ErrMissingDSN)

	// The outcome is memoized: repeated calls report the same error.
	db, err = connector.Connect()
	assert.Nil(t, db)
	assert.ErrorIs(t, err, database.ErrMissingDSN)
}
