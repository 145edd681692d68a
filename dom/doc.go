/*
Package dom loads HTML documents into arbor trees.

The payload of the resulting trees is a small Element value carrying tag or
text content; element structure mirrors the markup hierarchy. This gives the
generic container a realistic document-object-model shape without tying the
core tree to any markup concern.

# BSD License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor'.
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
