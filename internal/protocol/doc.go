// Package protocol implements the Minecraft Java Edition wire primitives:
// the VarInt codec, typed field readers and writers, and the incremental
// frame reassembler that tolerates arbitrary TCP segmentation.
package protocol
