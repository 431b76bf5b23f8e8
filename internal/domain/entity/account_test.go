package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Summary(t *testing.T) {
	account := &Account{
		ID:           uuid.New(),
		Username:     "ana.lopez",
		Email:        "ana.lopez@example.com",
		PasswordHash: "secret-hash",
		FullName:     "Ana Lopez",
		Phone:        "+34 600 000 000",
		Role:         RoleCustomer,
	}

	summary := account.Summary()

	require.NotNil(t, summary)
	assert.Equal(t, account.ID, summary.ID)
	assert.Equal(t, "ana.lopez", summary.Username)
	assert.Equal(t, "Ana Lopez", summary.FullName)
	assert.Equal(t, "ana.lopez@example.com", summary.Email)
	assert.Equal(t, "+34 600 000 000", summary.Phone)
}

func TestAccount_Summary_NilAccount(t *testing.T) {
	var account *Account

	assert.Nil(t, account.Summary())
}
