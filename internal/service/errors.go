package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("email is already taken")

	ErrIdentityResolution = errors.New("identity resolution failed")
	ErrHashingPassword    = errors.New("error hashing password")

	ErrProductNotFound    = errors.New("product not found")
	ErrNoUserIDForProduct = errors.New("no user ID for product was given")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
