// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is a single roster row: one student-like entity that callers look up
// by identifier or list by category.
//
// Records are built once when the roster is loaded and are never mutated
// afterwards, so they are passed around by value.
type Record struct {
	// ID is the roll number. It is kept as a string and compared with plain
	// string equality; ordering between records is lexicographic on ID.
	ID string `json:"roll"`

	// Name is the display name of the record.
	Name string `json:"name"`

	// Category is the group label, e.g. "CSE-01". Category queries match
	// it as a substring, not as an exact value.
	Category string `json:"section"`

	// Auxiliary is the free-form secondary attribute (a hostel assignment
	// in the reference dataset).
	Auxiliary string `json:"hostel"`
}
