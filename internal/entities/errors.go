package entities

import "errors"

var (
	ErrOrderNotFound              = errors.New("order not found")
	ErrStatusConflict             = errors.New("order status changed concurrently")
	ErrMissingDeliveryInformation = errors.New("delivery information must be provided")
	ErrInvalidStatusFilter        = errors.New("status can only be cancel or pending")
	ErrUnknownStatus              = errors.New("unknown order status")
	ErrInvalidDateRange           = errors.New("end date must not be before start date")
	ErrTransitionNotAllowed       = errors.New("not authorized to update order status")
	ErrStatusNotVisible           = errors.New("not authorized to list orders in this status")
	ErrForeignOrders              = errors.New("not authorized to access orders of another customer")
	ErrInvalidCursor              = errors.New("invalid pagination cursor")

	ErrUserExists         = errors.New("the user exists with same email")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidRole        = errors.New("role is not allowed here")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("invalid or missing access token")

	ErrProductExists    = errors.New("the product already exists")
	ErrProductNotFound  = errors.New("product does not exist")
	ErrNoVariants       = errors.New("product must have at least one variant")
	ErrTooManyVariants  = errors.New("cannot add more than 99 variants")
	ErrDuplicateVariant = errors.New("variant sizes must be unique")
	ErrSizeImmutable    = errors.New("cannot update size")
	ErrEmptyUpdate      = errors.New("nothing to update")
)
