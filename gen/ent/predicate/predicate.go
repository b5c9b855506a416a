// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobFile is the predicate function for jobfile builders.
type JobFile func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
