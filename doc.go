/*
Package pimrtree answers point-membership queries over large 2-D point sets
by distributing an R-tree over many execution units.

The pipeline is:

 1. sort the points along a Z-order (Morton) curve, so that points close in the
    plane end up close in the sequence (package geom),
 2. bulk-load an R-tree over the sorted sequence (package rtree),
 3. split the root's children among the execution units, giving each unit an
    independent deep copy of its subtrees,
 4. flatten every copy into a pointer-free record array and encode it into a
    byte blob (package flat),
 5. ship blob and query point to the units, where a fixed number of workers
    search the subtree in parallel (package unit),
 6. OR the units' result words into the final answer.

A point is found if it is stored in exactly one leaf of the tree, so at most one
unit reports a hit for duplicate-free input. The host keeps the pointer tree
and can answer every query locally as well; both answers always agree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package pimrtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// IndexError is an error type for the pimrtree module.
type IndexError string

func (e IndexError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged whenever an index configuration is unusable.
const ErrInvalidConfig = IndexError("pimrtree: invalid configuration")

// ErrUnitFailed is flagged whenever an execution unit did not deliver its
// result word.
const ErrUnitFailed = IndexError("pimrtree: execution unit failed")
