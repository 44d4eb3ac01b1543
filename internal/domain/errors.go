package domain

import "errors"

var (
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInconsistentPrice = errors.New("menu price exceeds sum of line item prices")
	ErrDuplicateLineItem = errors.New("duplicate product in menu line items")
	ErrProductNotFound   = errors.New("product not found")
	ErrMenuNotFound      = errors.New("menu not found")
	ErrGroupNotFound     = errors.New("menu group not found")
	ErrNotFound          = errors.New("not found")
)
