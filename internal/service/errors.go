package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid refresh token")

	ErrProductNotFound  = errors.New("product not found")
	ErrOutOfStock       = errors.New("product out of stock")
	ErrCartItemNotFound = errors.New("product is not in the cart")
	ErrCartEmpty        = errors.New("cart is empty")

	ErrListingNotFound = errors.New("listing not found")

	ErrEmptyMessage = errors.New("message is empty")
	ErrReplyPending = errors.New("assistant is still replying")
)
