package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveAnonymous(t *testing.T) {
	store := newFakeStore()
	uc := NewIdentityUC(store)

	identity, err := uc.Resolve(context.Background(), &AuthState{SessionToken: "session-a"})
	require.NoError(t, err)
	require.True(t, identity.Anonymous())
	require.True(t, identity.Key.Anonymous())
	require.Equal(t, "session-a", identity.Key.SessionToken)
	require.Empty(t, store.customers)
}

func TestResolveAuthenticatedCreatesCustomerOnce(t *testing.T) {
	store := newFakeStore()
	uc := NewIdentityUC(store)

	userID := int64(42)
	auth := &AuthState{UserID: &userID, FirstName: "Anna", LastName: "Sidorova", SessionToken: "s"}

	first, err := uc.Resolve(context.Background(), auth)
	require.NoError(t, err)
	require.False(t, first.Anonymous())
	require.Equal(t, "Anna", first.Customer.FirstName)

	second, err := uc.Resolve(context.Background(), auth)
	require.NoError(t, err)
	require.Equal(t, first.Customer.ID, second.Customer.ID)
	require.Len(t, store.customers, 1)
}

func TestResolveRefreshesNames(t *testing.T) {
	store := newFakeStore()
	uc := NewIdentityUC(store)

	userID := int64(42)

	_, err := uc.Resolve(context.Background(), &AuthState{UserID: &userID, FirstName: "Anna", LastName: "Sidorova"})
	require.NoError(t, err)

	updated, err := uc.Resolve(context.Background(), &AuthState{UserID: &userID, FirstName: "Anya", LastName: "Sidorova"})
	require.NoError(t, err)
	require.Equal(t, "Anya", updated.Customer.FirstName)
}
