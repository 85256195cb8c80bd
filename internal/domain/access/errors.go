package access

import "errors"

var (
	ErrUnauthorized       = errors.New("you are not allowed to perform this action")
	ErrCustomRoleNotFound = errors.New("custom role not found")
)
