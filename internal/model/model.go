// Package model contains domain models/data structures shared by the repository, service and HTTP layers.
// Keep it free of business logic.
package model
