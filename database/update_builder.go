package database

import (
	"fmt"
	"strings"
)

// updateBuilder assembles a partial UPDATE ... SET clause safely.
// Column names are compile-time constants; all values go through $N
// placeholders.
type updateBuilder struct {
	assignments []string
	args        []interface{}
	argCount    int
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{
		assignments: []string{},
		args:        []interface{}{},
		argCount:    1,
	}
}

// Set assigns a value to a column.
func (ub *updateBuilder) Set(column string, value interface{}) {
	ub.assignments = append(ub.assignments, fmt.Sprintf("%s = $%d", column, ub.argCount))
	ub.args = append(ub.args, value)
	ub.argCount++
}

// SetNull clears a column; used for explicit unset semantics.
func (ub *updateBuilder) SetNull(column string) {
	ub.assignments = append(ub.assignments, fmt.Sprintf("%s = NULL", column))
}

// SetRaw appends an assignment with no bound argument, e.g. NOW().
func (ub *updateBuilder) SetRaw(assignment string) {
	ub.assignments = append(ub.assignments, assignment)
}

func (ub *updateBuilder) Empty() bool {
	return len(ub.assignments) == 0
}

func (ub *updateBuilder) SetClause() string {
	return "SET " + strings.Join(ub.assignments, ", ")
}

func (ub *updateBuilder) Args() []interface{} {
	return ub.args
}

func (ub *updateBuilder) NextArgNum() int {
	return ub.argCount
}
