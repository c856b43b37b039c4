// Package core defines the domain contracts shared by every other package in
// SleepMesh: the request-scoped Context and Response types, the RiskLevel
// ordering and check result structures produced by responsible-AI validation,
// the Agent interface implemented by all response generators, and the Invoker
// that wraps every agent invocation with a validation pass.
//
// Keeping the contracts here (and only implementations elsewhere) prevents
// higher level packages from depending on concrete engines or stores.
package core
