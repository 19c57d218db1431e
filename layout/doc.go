/*
Package layout implements the field-offset accessor model.

A tree module declares the sizes of its root and element records and the
byte offsets of the fields the harness needs to read. A Descriptor turns
these numbers into accessor functions, and an Arena provides the memory a
module's tree lives in: one root record followed by a pre-sized array of
element records.

Descriptor is the only place in the harness where raw offset arithmetic
happens. Everything else consumes it through treeharness.Accessor.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package layout
