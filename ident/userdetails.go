/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package ident

import "strconv"

// UserDetailsForm discriminates the two USER command shapes. The wire
// discriminant is whether field 2 parses as an unsigned integer.
type UserDetailsForm uint8

const (
	// UserDetailsModeForm is the RFC 2812 shape: USER user mode * realname.
	UserDetailsModeForm UserDetailsForm = iota
	// UserDetailsHostForm is the RFC 1459 shape: USER user host server realname.
	UserDetailsHostForm
)

// UserDetails carries the USER command's payload in whichever of the two
// historical shapes the wire used.
type UserDetails struct {
	form     UserDetailsForm
	username string
	realname string

	// ModeBits is populated only when Form() == UserDetailsModeForm.
	modeBits uint32

	// Hostname and Servername are populated only when
	// Form() == UserDetailsHostForm.
	hostname   string
	servername string
}

// NewUserDetailsModeForm builds the RFC 2812 USER payload.
func NewUserDetailsModeForm(username string, modeBits uint32, realname string) (UserDetails, error) {
	if username == "" {
		return UserDetails{}, ErrInvalidUserDetails
	}
	return UserDetails{
		form:     UserDetailsModeForm,
		username: username,
		modeBits: modeBits,
		realname: realname,
	}, nil
}

// NewUserDetailsHostForm builds the RFC 1459 USER payload.
func NewUserDetailsHostForm(username, hostname, servername, realname string) (UserDetails, error) {
	if username == "" {
		return UserDetails{}, ErrInvalidUserDetails
	}
	return UserDetails{
		form:       UserDetailsHostForm,
		username:   username,
		hostname:   hostname,
		servername: servername,
		realname:   realname,
	}, nil
}

// ParseUserDetails picks the form based on whether field2 parses as an
// unsigned integer, per the USER command's arity-4 wire contract.
func ParseUserDetails(username, field2, field3, realname string) (UserDetails, error) {
	if bits, err := strconv.ParseUint(field2, 10, 32); err == nil {
		return NewUserDetailsModeForm(username, uint32(bits), realname)
	}
	return NewUserDetailsHostForm(username, field2, field3, realname)
}

// Form reports which wire shape these details were built from.
func (u UserDetails) Form() UserDetailsForm { return u.form }

// Username returns the username field common to both forms.
func (u UserDetails) Username() string { return u.username }

// Realname returns the realname field common to both forms.
func (u UserDetails) Realname() string { return u.realname }

// ModeBits returns the RFC 2812 mode bitmask. Only meaningful when
// Form() == UserDetailsModeForm.
func (u UserDetails) ModeBits() uint32 { return u.modeBits }

// Hostname returns the RFC 1459 hostname field. Only meaningful when
// Form() == UserDetailsHostForm.
func (u UserDetails) Hostname() string { return u.hostname }

// Servername returns the RFC 1459 servername field. Only meaningful when
// Form() == UserDetailsHostForm.
func (u UserDetails) Servername() string { return u.servername }

// Field2 renders the wire form of the second USER parameter, which is
// either the decimal mode bitmask or the hostname, depending on Form().
func (u UserDetails) Field2() string {
	if u.form == UserDetailsModeForm {
		return strconv.FormatUint(uint64(u.modeBits), 10)
	}
	return u.hostname
}

// Field3 renders the wire form of the third USER parameter, which is
// always "*" in the mode form (unused placeholder per RFC 2812) or the
// servername in the host form.
func (u UserDetails) Field3() string {
	if u.form == UserDetailsModeForm {
		return "*"
	}
	return u.servername
}
