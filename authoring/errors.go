package authoring

import "errors"

// Sentinel errors for YAML authoring, surfaced by Spec.Build and
// LoadSpecFile. Field-level validation (bad weight, missing side, unknown
// socket) is left to socket/model/rules, which already return their own
// sentinels; these cover mistakes specific to the declarative layer.
var (
	// ErrUnknownSocketName indicates a connection or model side referenced
	// a socket name that was never declared under sockets:.
	ErrUnknownSocketName = errors.New("authoring: reference to undeclared socket name")

	// ErrUnknownDirection indicates a model side key isn't one of the
	// coordinate system's recognised direction names.
	ErrUnknownDirection = errors.New("authoring: unrecognised direction name")

	// ErrUnknownRotation indicates a rotation value outside {0, 90, 180, 270}.
	ErrUnknownRotation = errors.New("authoring: rotation must be one of 0, 90, 180, 270")
)
