package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domcart "example.com/rocketshoes-cart/internal/domain/cart"
	domproduct "example.com/rocketshoes-cart/internal/domain/product"
)

type ProductCatalog interface {
	GetProduct(ctx context.Context, id int64) (*domproduct.Product, error)
	GetStock(ctx context.Context, id int64) (*domproduct.Stock, error)
}

type Service struct {
	storage  domcart.Storage
	catalog  ProductCatalog
	notifier Notifier
	locks    *cartLocks
}

func NewService(storage domcart.Storage, catalog ProductCatalog, notifier Notifier) *Service {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{
		storage:  storage,
		catalog:  catalog,
		notifier: notifier,
		locks:    newCartLocks(),
	}
}

type UpdateProductAmountInput struct {
	ProductID int64
	Amount    int64
}

func (s *Service) GetCart(ctx context.Context, cartID string) (*domcart.Cart, error) {
	if err := validateCartID(cartID); err != nil {
		return nil, err
	}
	return s.load(ctx, cartID)
}

// AddProduct puts one more unit of productID in the cart, appending a new
// line when the product is not there yet.
func (s *Service) AddProduct(ctx context.Context, cartID string, productID int64) (*domcart.Cart, error) {
	if err := validateCartID(cartID); err != nil {
		return nil, err
	}
	unlock := s.locks.lock(cartID)
	defer unlock()

	current, err := s.load(ctx, cartID)
	if err != nil {
		return nil, s.fail(ctx, cartID, OpAdd, MsgAddFailed, err)
	}
	updated := current.Clone()
	idx, exists := updated.Find(productID)

	stock, err := s.catalog.GetStock(ctx, productID)
	if err != nil {
		return nil, s.fail(ctx, cartID, OpAdd, MsgAddFailed, err)
	}

	amount := int64(1)
	if exists {
		amount = updated.Items[idx].Amount + 1
	}
	if amount > stock.Amount {
		return nil, s.fail(ctx, cartID, OpAdd, MsgOutOfStock, domproduct.ErrOutOfStock)
	}

	if exists {
		updated.Items[idx].Amount = amount
	} else {
		p, err := s.catalog.GetProduct(ctx, productID)
		if err != nil {
			return nil, s.fail(ctx, cartID, OpAdd, MsgAddFailed, err)
		}
		updated.Items = append(updated.Items, domcart.Item{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Image:     p.Image,
			Amount:    amount,
		})
	}

	if err := s.persist(ctx, cartID, current, updated); err != nil {
		return nil, s.fail(ctx, cartID, OpAdd, MsgAddFailed, err)
	}
	return updated, nil
}

func (s *Service) RemoveProduct(ctx context.Context, cartID string, productID int64) (*domcart.Cart, error) {
	if err := validateCartID(cartID); err != nil {
		return nil, err
	}
	unlock := s.locks.lock(cartID)
	defer unlock()

	current, err := s.load(ctx, cartID)
	if err != nil {
		return nil, s.fail(ctx, cartID, OpRemove, MsgRemoveFailed, err)
	}
	updated := current.Clone()
	idx, ok := updated.Find(productID)
	if !ok {
		return nil, s.fail(ctx, cartID, OpRemove, MsgRemoveFailed, domcart.ErrProductNotInCart)
	}
	updated.Remove(idx)

	if err := s.persist(ctx, cartID, current, updated); err != nil {
		return nil, s.fail(ctx, cartID, OpRemove, MsgRemoveFailed, err)
	}
	return updated, nil
}

// UpdateProductAmount sets the amount of a line already in the cart.
// Amounts of zero or less leave the cart untouched.
func (s *Service) UpdateProductAmount(ctx context.Context, cartID string, in UpdateProductAmountInput) (*domcart.Cart, error) {
	if err := validateCartID(cartID); err != nil {
		return nil, err
	}
	unlock := s.locks.lock(cartID)
	defer unlock()

	current, err := s.load(ctx, cartID)
	if err != nil {
		return nil, s.fail(ctx, cartID, OpUpdate, MsgUpdateFailed, err)
	}
	if in.Amount <= 0 {
		return current, nil
	}

	stock, err := s.catalog.GetStock(ctx, in.ProductID)
	if err != nil {
		return nil, s.fail(ctx, cartID, OpUpdate, MsgUpdateFailed, err)
	}
	if in.Amount > stock.Amount {
		return nil, s.fail(ctx, cartID, OpUpdate, MsgOutOfStock, domproduct.ErrOutOfStock)
	}

	updated := current.Clone()
	idx, ok := updated.Find(in.ProductID)
	if !ok {
		return nil, s.fail(ctx, cartID, OpUpdate, MsgUpdateFailed, domcart.ErrProductNotInCart)
	}
	updated.Items[idx].Amount = in.Amount

	if err := s.persist(ctx, cartID, current, updated); err != nil {
		return nil, s.fail(ctx, cartID, OpUpdate, MsgUpdateFailed, err)
	}
	return updated, nil
}

// Clear forgets the stored snapshot of a cart.
func (s *Service) Clear(ctx context.Context, cartID string) error {
	if err := validateCartID(cartID); err != nil {
		return err
	}
	unlock := s.locks.lock(cartID)
	defer unlock()

	if err := s.storage.RemoveItem(ctx, domcart.StorageKey(cartID)); err != nil {
		return fmt.Errorf("storage.RemoveItem: %w", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, cartID string) (*domcart.Cart, error) {
	value, err := s.storage.GetItem(ctx, domcart.StorageKey(cartID))
	if errors.Is(err, domcart.ErrStorageItemNotFound) {
		return domcart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage.GetItem: %w", err)
	}
	return domcart.Decode(value)
}

// persist writes the snapshot only when the cart actually changed.
func (s *Service) persist(ctx context.Context, cartID string, previous, next *domcart.Cart) error {
	if previous.Equal(next) {
		return nil
	}
	value, err := domcart.Encode(next)
	if err != nil {
		return err
	}
	if err := s.storage.SetItem(ctx, domcart.StorageKey(cartID), value); err != nil {
		return fmt.Errorf("storage.SetItem: %w", err)
	}
	return nil
}

func (s *Service) fail(ctx context.Context, cartID string, op Op, msg string, err error) error {
	s.notifier.Notify(ctx, Notification{CartID: cartID, Level: LevelError, Message: msg})
	return &OperationError{Op: op, Message: msg, Err: err}
}

func validateCartID(cartID string) error {
	if strings.TrimSpace(cartID) == "" {
		return domcart.ErrEmptyCartID
	}
	return nil
}
