// Package store holds the document key scheme and the in-memory document store.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned by every DocumentStore for keys ValidKey rejects
var ErrInvalidKey = errors.New("invalid document key")

// Document keys
const (
	KeyRegisteredUsers = "registered_users"
	KeyOrders          = "orders"

	cartPrefix           = "cart:"
	chatPrefix           = "chat:"
	sellerProductsPrefix = "seller_products:"
)

// CartKey is the key of a session's cart
func CartKey(sessionID string) string {
	return cartPrefix + sessionID
}

// ChatKey is the key of a session's conversation
func ChatKey(sessionID string) string {
	return chatPrefix + sessionID
}

// SellerProductsKey is the key of a seller's listings
func SellerProductsKey(sellerID string) string {
	return sellerProductsPrefix + sellerID
}

// ValidKey reports whether key is usable as a document key
func ValidKey(key string) bool {
	return key != "" && !strings.ContainsAny(key, " \t\r\n")
}

// CheckKey returns ErrInvalidKey, naming key, when ValidKey rejects it
func CheckKey(key string) error {
	if !ValidKey(key) {
		return fmt.Errorf("%w %q", ErrInvalidKey, key)
	}
	return nil
}
