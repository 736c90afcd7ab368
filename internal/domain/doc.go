// Package domain contains shared domain types used across the sub-packages.
// The command contract lives in domain/command, the bounded history in
// domain/history and the host document with its command variants in
// domain/canvas. This root package holds the sentinel errors and validation
// types that every layer maps against.
package domain
