package services

import "errors"

// Sentinel errors returned by the services. Controllers map them onto HTTP
// status codes and messages; anything else is a store failure and surfaces
// as an internal error.
var (
	ErrBlogNotFound       = errors.New("blog not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrNotOwner           = errors.New("caller is not the owner")
	ErrAlreadyReacted     = errors.New("already reacted")
	ErrNotReacted         = errors.New("not reacted")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
