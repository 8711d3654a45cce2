// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

// Diagnostics holds the last ErrorCode raised during evaluations. The code
// is sticky: raising a new code replaces it, nothing else resets it except
// ClearError.
//
// The formulations take a *Diagnostics to report to. A nil *Diagnostics
// discards every code.
type Diagnostics struct {
	code ErrorCode
}

// Raise records code as the current error code.
func (d *Diagnostics) Raise(code ErrorCode) {
	if d == nil {
		return
	}
	d.code = code
}

// ErrorCode returns the last raised code, or OK.
func (d *Diagnostics) ErrorCode() ErrorCode {
	if d == nil {
		return OK
	}
	return d.code
}

// ClearError resets the error code to OK.
func (d *Diagnostics) ClearError() {
	if d == nil {
		return
	}
	d.code = OK
}
