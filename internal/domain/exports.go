package domain

import (
	interfaces "passvault/internal/domain/interfaces"
	types "passvault/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Credential    = types.Credential
	Collection    = types.Collection
	FormatVersion = types.FormatVersion
)

// Vault file layouts.
const (
	FormatV0 = types.FormatV0
	FormatV1 = types.FormatV1
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	VaultStore        = interfaces.VaultStore
	CredentialStore   = interfaces.CredentialStore
	SessionService    = interfaces.SessionService
	PasswordGenerator = interfaces.PasswordGenerator
)
