package orders

import "github.com/imrishuroy/go-pos-terminal/internal/apperr"

var (
	ErrDiscountOutOfRange = apperr.New(apperr.KindRange, "Discount must be between 0 and 100 percent")
	ErrInvalidDiscount    = apperr.New(apperr.KindValidation, "Discount must be a number")
	ErrEmptyCart          = apperr.New(apperr.KindEmptyCart, "Please add items to the cart before completing order")
)
