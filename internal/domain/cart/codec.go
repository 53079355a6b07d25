package cart

import (
	"encoding/json"
	"fmt"
	"strings"
)

const storageKeyPrefix = "@RocketShoes:cart"

// StorageKey is the key a cart snapshot is kept under for one client.
func StorageKey(cartID string) string {
	return storageKeyPrefix + ":" + cartID
}

// Encode serialises the cart as a JSON array of items.
func Encode(c *Cart) (string, error) {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode cart: %w", err)
	}
	return string(b), nil
}

// Decode parses a snapshot written by Encode. An empty value is an empty cart.
func Decode(value string) (*Cart, error) {
	if strings.TrimSpace(value) == "" {
		return New(), nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if items == nil {
		items = []Item{}
	}
	return &Cart{Items: items}, nil
}
