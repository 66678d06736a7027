package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountNumber(t *testing.T) {
	assert.Regexp(t, `^QT\d{8}$`, NewAccountNumber())
}

func TestTransactionTerminal(t *testing.T) {
	txn := &Transaction{Status: StatusPending}
	assert.False(t, txn.Terminal())

	txn.Status = StatusSuccessful
	assert.True(t, txn.Terminal())

	txn.Status = StatusFailed
	assert.True(t, txn.Terminal())
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	u := User{Name: "Ada Obi", Email: "ada@example.com", Password: "hashed-secret"}
	body, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "hashed-secret")
}

func TestJSONRoundTrip(t *testing.T) {
	m := JSON{"error": "Service temporarily unavailable. Please try again."}

	value, err := m.Value()
	require.NoError(t, err)

	var out JSON
	require.NoError(t, out.Scan(value))
	assert.Equal(t, m, out)
}

func TestJSONScanNil(t *testing.T) {
	var out JSON
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}
