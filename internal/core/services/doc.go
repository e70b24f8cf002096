// Package services implements the driving ports: the query engine,
// the statistics aggregator, and the report formatter. Services hold
// no state beyond their injected driven ports, and every service
// operation is a pure read; the store's Add is the system's only
// mutator and lives behind the driven.StudyStore port.
package services
