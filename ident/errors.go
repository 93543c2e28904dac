/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ident

// Error is a workaround to allow for immutable error strings
// which satisfy the error interface.
type Error string

func (err Error) Error() string {
	return string(err)
}

func (err Error) String() string {
	return string(err)
}

// Validation error sentinels. Constructors in this package return one of
// these (or wrap one via errors.Is) instead of panicking on adversarial
// input.
const (
	ErrInvalidNick        Error = "ident: invalid nickname"
	ErrInvalidChannel     Error = "ident: invalid channel name"
	ErrInvalidRecipient   Error = "ident: invalid recipient"
	ErrInvalidTag         Error = "ident: invalid tag key"
	ErrInvalidUserDetails Error = "ident: invalid user details"
)
