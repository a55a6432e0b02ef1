package store

import "github.com/MKhiriev/go-users-api/models"

// DemoUsers returns the records a fresh store is seeded with when seeding is
// enabled. None of them has a password, so they are listable but cannot log in.
func DemoUsers() []models.User {
	return []models.User{
		{UserID: 1, Name: "Alice", Age: 30, City: "New York", Email: "alice@example.com"},
		{UserID: 2, Name: "Bob", Age: 25, City: "Boston", Email: "bob@example.com"},
		{UserID: 3, Name: "Charlie", Age: 35, City: "Chicago", Email: "charlie@example.com"},
		{UserID: 4, Name: "Bubka", Age: 43, City: "Svishtov", Email: "bubka@example.com"},
	}
}
