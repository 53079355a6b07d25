package cart

import "errors"

var (
	ErrProductNotInCart    = errors.New("product not in cart")
	ErrCorruptSnapshot     = errors.New("cart snapshot is corrupt")
	ErrStorageItemNotFound = errors.New("storage item not found")
	ErrEmptyCartID         = errors.New("cart id is empty")
)
