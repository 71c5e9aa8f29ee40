// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Brand is the predicate function for brand builders.
type Brand func(*sql.Selector)

// Invite is the predicate function for invite builders.
type Invite func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Stylist is the predicate function for stylist builders.
type Stylist func(*sql.Selector)
