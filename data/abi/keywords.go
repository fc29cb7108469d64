// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package abi

// Transaction argument types. An argument of one of these types stands for a
// transaction placed in the group right before the application call.
const (
	AnyTransactionType             = "Any"
	PaymentTransactionType         = "Payment"
	KeyRegistrationTransactionType = "KeyRegistration"
	AssetConfigTransactionType     = "AssetConfig"
	AssetTransferTransactionType   = "AssetTransfer"
	AssetFreezeTransactionType     = "AssetFreeze"
	ApplicationCallTransactionType = "AppCall"
)

// Reference argument types. An argument of one of these types is passed as an
// index into one of the application call's foreign arrays.
const (
	AccountReferenceType     = "AccountReferenceType"
	AssetReferenceType       = "AssetReferenceType"
	ApplicationReferenceType = "ApplicationReferenceType"
)

// VoidReturnType is the return type of a method that returns nothing.
const VoidReturnType = "void"

// IsTransactionType checks if a type string represents a transaction type
// argument, such as "Payment" or "Any".
func IsTransactionType(s string) bool {
	switch s {
	case AnyTransactionType, PaymentTransactionType, KeyRegistrationTransactionType,
		AssetConfigTransactionType, AssetTransferTransactionType, AssetFreezeTransactionType,
		ApplicationCallTransactionType:
		return true
	default:
		return false
	}
}

// IsReferenceType checks if a type string represents a reference type
// argument, such as "AccountReferenceType".
func IsReferenceType(s string) bool {
	switch s {
	case AccountReferenceType, AssetReferenceType, ApplicationReferenceType:
		return true
	default:
		return false
	}
}
