package mesh

import "errors"

var (
	// ErrNotBootstrapped indicates a mutating or query operation was
	// attempted before three non-collinear vertices have been accepted.
	ErrNotBootstrapped = errors.New("tinmesh: mesh is not yet bootstrapped")

	// ErrVertexNotFound indicates a removal or query referenced a
	// vertex ID that is not currently live in the mesh.
	ErrVertexNotFound = errors.New("tinmesh: vertex not found")

	// ErrCancelled indicates a batch operation's monitor callback
	// requested cancellation; the mesh is left in the consistent state
	// reached after the last fully-applied vertex.
	ErrCancelled = errors.New("tinmesh: operation cancelled by monitor")

	// ErrDisposed indicates an operation was attempted on a mesh after
	// Dispose was called.
	ErrDisposed = errors.New("tinmesh: mesh has been disposed")

	// ErrCannotRemoveHullTriangle indicates a removal was attempted that
	// would leave fewer than three vertices in the mesh.
	ErrCannotRemoveHullTriangle = errors.New("tinmesh: cannot remove a vertex from the last remaining triangle")

	// ErrInsufficientConstraintGeometry indicates a constraint was
	// supplied with too few points to define an edge (linear) or a
	// closed region (polygon).
	ErrInsufficientConstraintGeometry = errors.New("tinmesh: constraint has insufficient geometry")

	// ErrConstraintAlreadyInstalled indicates AddConstraints was called
	// a second time on a mesh that already has constraints installed.
	ErrConstraintAlreadyInstalled = errors.New("tinmesh: constraints already installed on this mesh")

	// ErrCrossingConstraints indicates forcing a constraint edge was
	// blocked by another, previously forced, constraint edge standing
	// in its way.
	ErrCrossingConstraints = errors.New("tinmesh: constraint edges cross")

	// ErrInvalidConstraintGeometry indicates a constraint segment
	// degenerates (coincident endpoints) or otherwise cannot be forced.
	ErrInvalidConstraintGeometry = errors.New("tinmesh: invalid constraint geometry")
)
