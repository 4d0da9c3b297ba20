package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/property_ledger/pkg/database"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_Errors(t *testing.T) {
	_, err := database.NewRedisClient(context.Background(), "")
	assert.ErrorContains(t, err, "cannot be empty")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, err := database.NewRedisClient(ctx, "127.0.0.1:1")
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestCloseRedisClient_Nil(t *testing.T) {
	assert.NotPanics(t, func() { database.CloseRedisClient(nil) })
}
