/*
Package display renders arbor trees as indented text for consoles.

Rendering is width-aware: node labels are measured in terminal columns using
Unicode segmentation (UAX#29 grapheme clusters and UAX#11 East Asian width),
so trees carrying non-Latin payloads keep their layout. Output may be
colorized for interactive terminals.

# BSD License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor'.
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}
