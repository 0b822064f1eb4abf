package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateBuilder_Empty(t *testing.T) {
	ub := newUpdateBuilder()

	assert.True(t, ub.Empty())
	assert.Empty(t, ub.Args())
	assert.Equal(t, 1, ub.NextArgNum())
}

func TestUpdateBuilder_Set(t *testing.T) {
	ub := newUpdateBuilder()
	ub.Set("title", "New Title")
	ub.Set("category", "websites")

	assert.False(t, ub.Empty())
	assert.Equal(t, "SET title = $1, category = $2", ub.SetClause())
	assert.Equal(t, []interface{}{"New Title", "websites"}, ub.Args())
	assert.Equal(t, 3, ub.NextArgNum())
}

func TestUpdateBuilder_SetNull(t *testing.T) {
	ub := newUpdateBuilder()
	ub.Set("title", "T")
	ub.SetNull("link")

	assert.Equal(t, "SET title = $1, link = NULL", ub.SetClause())
	assert.Equal(t, []interface{}{"T"}, ub.Args(), "NULL assignment binds no argument")
	assert.Equal(t, 2, ub.NextArgNum())
}

func TestUpdateBuilder_SetRaw(t *testing.T) {
	ub := newUpdateBuilder()
	ub.SetNull("link")
	ub.SetRaw("updated_at = NOW()")

	assert.Equal(t, "SET link = NULL, updated_at = NOW()", ub.SetClause())
	assert.Empty(t, ub.Args())
}
