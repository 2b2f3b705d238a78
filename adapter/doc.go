// Package adapter provides format-specific adapters for loading example
// and test data into the module's core types. Each adapter subpackage
// handles a specific data format and may have its own external
// dependencies.
//
// # Architectural Boundary
//
// Adapters live at the outermost tier of the module. This design provides:
//
//   - Dependency hygiene via import granularity: Go modules are granular at
//     the import level. Consumers who import only the core tier do not
//     transitively depend on tidwall/jsonc. Adapter dependencies are pulled
//     only when adapter/fixture is imported.
//
//   - Clear library/consumer boundary: the adapter package explicitly
//     imports the library to use it, mirroring how downstream consumers
//     structure their own adapters.
//
//   - Extensibility signal: users see adapter/fixture and understand they
//     can add adapter/myformat using the same pattern.
//
// # Dependency Direction
//
// Adapters depend on library packages; library packages never depend on
// adapters:
//
//	adapter/fixture  ──imports──▶  triple
//
// # Layering Discipline
//
// The adapter package does not import internal/* packages. This maintains a
// clean separation between core library internals and the adapter layer.
//
// # Subpackages
//
//   - [fixture]: loads example/test graphs from commented-JSON ".graphc"
//     fixture files into triple.Graph values
package adapter
