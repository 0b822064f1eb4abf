package database

import (
	"context"
	"testing"
	"vitrine/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertContactMessage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()
	msg, err := db.InsertContactMessage(ctx, models.CreateContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello",
		Company: strPtr("Analytical Engines Ltd"),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, "Ada", msg.Name)
	require.NotNil(t, msg.Company)
	assert.Equal(t, "Analytical Engines Ltd", *msg.Company)
	assert.False(t, msg.Read, "messages start unread")
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestInsertContactMessage_NoCompany(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	msg, err := db.InsertContactMessage(context.Background(), models.CreateContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello",
	})

	require.NoError(t, err)
	assert.Nil(t, msg.Company)
}

func TestListContactMessages(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	messages, err := db.ListContactMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)

	for _, text := range []string{"first", "second", "third"} {
		_, err := db.InsertContactMessage(ctx, models.CreateContactRequest{
			Name: "A", Email: "a@b.com", Message: text,
		})
		require.NoError(t, err)
	}

	messages, err = db.ListContactMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].CreatedAt.After(messages[i-1].CreatedAt),
			"messages must be newest first")
	}
}

func TestDeleteContactMessage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	msg, err := db.InsertContactMessage(ctx, models.CreateContactRequest{
		Name: "A", Email: "a@b.com", Message: "bye",
	})
	require.NoError(t, err)

	require.NoError(t, db.DeleteContactMessage(ctx, msg.ID))

	_, err = db.GetContactMessage(ctx, msg.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, db.DeleteContactMessage(ctx, msg.ID), ErrNotFound)
}

func TestDeleteContactMessages(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	ctx := context.Background()

	ids := []uuid.UUID{uuid.New()} // unknown id is silently skipped
	for _, text := range []string{"one", "two"} {
		msg, err := db.InsertContactMessage(ctx, models.CreateContactRequest{
			Name: "A", Email: "a@b.com", Message: text,
		})
		require.NoError(t, err)
		ids = append(ids, msg.ID)
	}

	deleted, err := db.DeleteContactMessages(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	messages, err := db.ListContactMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
