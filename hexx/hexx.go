package hexx

import "encoding/binary"

var be = binary.BigEndian

// Put32 spreads the eight nibbles of x into eight uppercase ascii hex
// digits, most significant digit in the high byte.
func Put32(x uint32) (v uint64) {
	v = uint64(uint16(x)) | uint64(x)<<16
	v = (v & 0x000000FF000000FF) | ((v & 0x0000FF000000FF00) << 8)
	v = (v & 0x000F000F000F000F) | ((v & 0x00F000F000F000F0) << 4)
	return v + 0x3030303030303030 + 7*((v+0x0606060606060606)>>4&0x0101010101010101)
}

func Append64(dst []byte, x uint64) []byte {
	dst = be.AppendUint64(dst, Put32(uint32(x>>32)))
	return be.AppendUint64(dst, Put32(uint32(x)))
}

func Format64(x uint64) string {
	var buf [16]byte
	return string(Append64(buf[:0], x))
}
