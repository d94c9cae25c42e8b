package domain

import "errors"

var ErrAuthenticationRequired = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrTeamNotFound = errors.New("team not found")
var ErrRecognitionNotFound = errors.New("recognition not found")
var ErrNotificationNotFound = errors.New("notification not found")
var ErrInvalidVisibility = errors.New("invalid visibility")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
