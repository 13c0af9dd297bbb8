package domain

import (
	"errors"
	"fmt"
)

const (
	RoleOperator = "operator"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedInvalidID      = "invalid id parameter"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageSuccessPing          = "pong"

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrInvalidID     = errors.New("id must be a positive integer")
	ErrEmptyUpdate   = errors.New("update body does not contain any known field")
)

func MessageSuccessList(resource string) string {
	return fmt.Sprintf("success get %s", resource)
}

func MessageSuccessGet(resource string) string {
	return fmt.Sprintf("success get %s detail", resource)
}

func MessageSuccessCreate(resource string) string {
	return fmt.Sprintf("%s created successfully", resource)
}

func MessageSuccessUpdate(resource string) string {
	return fmt.Sprintf("%s updated successfully", resource)
}

func MessageSuccessDelete(resource string) string {
	return fmt.Sprintf("%s deleted successfully", resource)
}

func MessageFailedList(resource string) string {
	return fmt.Sprintf("failed to fetch %s", resource)
}

func MessageFailedGet(resource string) string {
	return fmt.Sprintf("failed to fetch %s detail", resource)
}

func MessageFailedCreate(resource string) string {
	return fmt.Sprintf("failed to create %s", resource)
}

func MessageFailedUpdate(resource string) string {
	return fmt.Sprintf("failed to update %s", resource)
}

func MessageFailedDelete(resource string) string {
	return fmt.Sprintf("failed to delete %s", resource)
}
