/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package multipart

// Error is an immutable sentinel error string, the same pattern used
// throughout this module's packages.
type Error string

func (err Error) Error() string  { return string(err) }
func (err Error) String() string { return string(err) }

const (
	ErrInconsistentTotal  Error = "part total disagrees with slot"
	ErrDuplicatePart      Error = "part number already received"
	ErrOrphaned           Error = "part belongs to no known group"
	ErrTimeout            Error = "slot expired before completion"
	ErrEvicted            Error = "slot evicted under memory pressure"
	ErrDeserializeFailure Error = "malformed packet encoding"
)
