// Package models defines the core data structures for users and inventory items.
package models

// User represents a registered account.
type User struct {
	// ID is the unique identifier assigned by the database.
	ID int64 `json:"id"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`
}

// Item is a named, quantified inventory entry owned by a user.
type Item struct {
	// ID is the unique identifier assigned by the database.
	ID int64 `json:"id"`
	// Name is the item's display name.
	Name string `json:"name"`
	// Quantity is the number of units on hand.
	Quantity int64 `json:"quantity"`
	// OwnerID references the user that created the item.
	OwnerID int64 `json:"uid"`
}
