package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("an employee with that name already exists")
	ErrInvalidFullName  = errors.New("full name must be exactly a first and a last name")
	ErrInvalidFileKey   = errors.New("file key must be First_Last")
	ErrCorruptRecord    = errors.New("employee record file is corrupt")
)
