package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condobooks/condo_books_app/internal/apperrors"
	"github.com/condobooks/condo_books_app/internal/dto"
)

func TestCreateAccountRejectsDuplicateName(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccountService(store)

	created, err := svc.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name: "BofA Checking",
		Type: "checking",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	_, err = svc.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name: "BofA Checking",
		Type: "savings",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestGetAndUpdateAccount(t *testing.T) {
	store := newTestStore(t)
	svc := NewAccountService(store)

	created, err := svc.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:        "BofA Checking",
		Type:        "checking",
		Institution: "Bank of America",
	})
	require.NoError(t, err)

	fetched, err := svc.GetAccount(context.Background(), created.AccountID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)

	_, err = svc.GetAccount(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	name := "BofA Checking 7948"
	inactive := false
	updated, err := svc.UpdateAccount(context.Background(), created.AccountID, dto.UpdateAccountRequest{
		Name:     &name,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.False(t, updated.IsActive)
	// The account type never changes after creation.
	assert.Equal(t, created.Type, updated.Type)

	accounts, err := svc.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, name, accounts[0].Name)
}
