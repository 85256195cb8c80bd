package school

import "errors"

var (
	ErrSchoolNotFound     = errors.New("school not found")
	ErrSchoolAccessDenied = errors.New("you do not belong to this school")
)
