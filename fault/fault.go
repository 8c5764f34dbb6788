// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAllocationFailure    = ProcessError("node allocation failed")
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBlackHeight          = InvalidError("unequal black height")
	ErrCountMismatch        = InvalidError("node count mismatch")
	ErrEmptyTree            = NotFoundError("tree is empty")
	ErrForeignNode          = InvalidError("node does not belong to tree")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyOrder             = InvalidError("keys out of order")
	ErrParentLink           = InvalidError("inconsistent parent link")
	ErrRedViolation         = InvalidError("red node has red child")
	ErrRootNotBlack         = InvalidError("root is not black")
	ErrSentinelModified     = InvalidError("sentinel modified")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
