package staff

import "errors"

var (
	ErrStaffNotFound    = errors.New("staff member not found")
	ErrStaffInactive    = errors.New("staff account is inactive")
	ErrStaffNotInSchool = errors.New("staff member does not belong to this school")
)
