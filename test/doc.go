// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// DemandSuccess and DemandFailure test a value for a success or failure
// condition suitable to its type (bool, error or nil) and fail the test
// immediately if the value doesn't match. DemandEquality does the same for
// plain equality between two values of the same comparable type.
//
// DemandImplements tests whether a concrete instance satisfies an interface.
//
// CompareWriter implements io.Writer and buffers everything written to it so
// a test can compare the buffered output against an expected string.
package test
