// Package kernel provides the core domain primitives shared by the whole
// model: the UUID value object used as entity identifier, the ConstructorGuard
// pattern that enforces construction through factory functions, and the Actor
// identity supplied by the authentication collaborator.
//
// All primitives are immutable value objects, safe for concurrent use.
package kernel
