package cli

import "errors"

var (
	errUnknownCommand  = errors.New("unknown command")
	errMissingAppGUID  = errors.New("routes requires -app")
	errMissingConfig   = errors.New("routes requires -config")
	errUnexpectedModel = errors.New("unexpected model returned by the terminal program")
)
