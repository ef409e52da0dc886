// Package utils provides common utility functions for the inventory-manager application.
// It includes helpers for loose value conversion, such as coercing decoded JSON values
// into record primary keys, that don't fit into domain-specific packages.
package utils
