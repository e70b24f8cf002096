// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - StudyStore: The ordered, id-indexed study collection
//   - ReferenceSource: Static thematic/GRADE-CERQual reference tables
//   - FileWriter: Path + payload writes, so the core never opens files
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
