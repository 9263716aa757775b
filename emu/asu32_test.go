package emu_test

// asU32 reinterprets a signed 32-bit value as its unsigned bit pattern,
// avoiding the constant-overflow compile error of uint32(int32(negConst)).
func asU32(v int32) uint32 {
	return uint32(v)
}
