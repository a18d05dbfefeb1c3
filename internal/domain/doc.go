// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/project), and the rule
// engine that guards project submissions lives in domain/validation. This root
// package holds the sentinel errors and the field-level validation error that
// every inbound adapter maps to a user-visible failure.
package domain
