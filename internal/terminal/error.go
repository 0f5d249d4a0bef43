package terminal

import "errors"

var (
	ErrTerminalNotFound = errors.New("terminal not found")
	ErrNoRoute          = errors.New("no route between terminals")
)
