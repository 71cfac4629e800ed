// Package embeddedsass is a hand-authored stand-in for the generated
// protoc-gen-go code the Sass Embedded Protocol ships as a .proto file.
// Message generation itself is out of scope (see spec §1); this package
// supplies the Go types the rest of the module needs, encoded and decoded
// against google.golang.org/protobuf/encoding/protowire so the wire bytes
// follow real protobuf framing rules without requiring the full
// descriptor/reflection machinery protoc-gen-go normally builds.
package embeddedsass
