// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package regs

import (
	"encoding/binary"

	"github.com/gogpu/regpipe/shader"
)

// TokenMovVccHi is the s_mov_b32 vcc_hi literal that opens every program
// carrying an embedded binary-info header. The following word holds the
// header position.
const TokenMovVccHi uint32 = 0xBEEB03FF

// binaryInfoWords is the size of the embedded header in 32-bit words.
const binaryInfoWords = 7

var binaryInfoSignature = [7]byte{'O', 'r', 'b', 'S', 'h', 'd', 'r'}

// ProgramSettings holds the resource fields of a program register block.
type ProgramSettings struct {
	NumVgprs    uint8
	NumUserRegs uint8
	VgprCompCnt uint8
}

// ShaderProgram is a graphics program register block together with the
// shadowed instruction memory it points at.
type ShaderProgram struct {
	// Address is the program GPU address; zero means unbound.
	Address  uint64
	Code     []uint32
	Settings ProgramSettings
	UserData [NumUserData]uint32
}

// Bound reports whether a program is attached.
func (p *ShaderProgram) Bound() bool {
	return p.Address != 0 && len(p.Code) > 0
}

// ComputeProgram is the compute program register block.
type ComputeProgram struct {
	ShaderProgram

	NumThreadX uint32
	NumThreadY uint32
	NumThreadZ uint32
	TgidEnable [3]bool

	// LdsSize is the shared memory allocation in 128-dword granules.
	LdsSize uint32
}

// IsTgidEnabled reports whether the workgroup id for axis i is injected.
func (c *ComputeProgram) IsTgidEnabled(i int) bool {
	return c.TgidEnable[i]
}

// SharedMemSize returns the shared memory allocation in bytes.
func (c *ComputeProgram) SharedMemSize() uint32 {
	return c.LdsSize * 128 * 4
}

// BinaryInfo is the header the shader compiler appends to every program.
type BinaryInfo struct {
	Signature   [7]byte
	Version     uint8
	Length      uint32
	ChunkUsage  uint32
	ShaderHash0 uint32
	ShaderHash1 uint32
	CRC32       uint32
}

// Valid reports whether the header signature is intact.
func (b *BinaryInfo) Valid() bool {
	return b.Signature == binaryInfoSignature
}

// ShaderHash returns the 64-bit content hash identifying the program.
func (b *BinaryInfo) ShaderHash() uint64 {
	return uint64(b.ShaderHash0)<<32 | uint64(b.CRC32)
}

// GetBinaryInfo locates and decodes the header of a program. A program
// without the leading token or whose header lies outside the code yields
// a zero BinaryInfo, which is not Valid.
func GetBinaryInfo(p *ShaderProgram) BinaryInfo {
	code := p.Code
	if len(code) < 2 || code[0] != TokenMovVccHi {
		return BinaryInfo{}
	}
	start := (uint64(code[1]) + 1) * 2
	if start+binaryInfoWords > uint64(len(code)) {
		return BinaryInfo{}
	}

	var buf [binaryInfoWords * 4]byte
	for i := range binaryInfoWords {
		binary.LittleEndian.PutUint32(buf[i*4:], code[start+uint64(i)])
	}

	var b BinaryInfo
	copy(b.Signature[:], buf[0:7])
	b.Version = buf[7]
	b.Length = binary.LittleEndian.Uint32(buf[8:])
	b.ChunkUsage = binary.LittleEndian.Uint32(buf[12:])
	b.ShaderHash0 = binary.LittleEndian.Uint32(buf[16:])
	b.ShaderHash1 = binary.LittleEndian.Uint32(buf[20:])
	b.CRC32 = binary.LittleEndian.Uint32(buf[24:])
	return b
}

// GetParams extracts the translation parameters of a program. The code
// slice is limited to the length recorded in its header.
func GetParams(p *ShaderProgram) shader.Params {
	bi := GetBinaryInfo(p)
	code := p.Code
	if n := int(bi.Length / 4); bi.Valid() && n < len(code) {
		code = code[:n]
	}
	numUser := int(p.Settings.NumUserRegs)
	if numUser > NumUserData {
		numUser = NumUserData
	}
	return shader.Params{
		UserData: p.UserData[:numUser],
		Code:     code,
		Hash:     bi.ShaderHash(),
	}
}

// BuildProgramCode assembles an instruction stream with a valid header
// carrying the given hash words. It is used to stage programs into shadow
// memory for replay and tests.
func BuildProgramCode(body []uint32, hash0, crc uint32) []uint32 {
	// The header starts at (code[1]+1)*2, right after token, offset and body.
	headerAt := 2 + len(body)
	if headerAt%2 != 0 {
		headerAt++
	}
	code := make([]uint32, headerAt+binaryInfoWords)
	code[0] = TokenMovVccHi
	code[1] = uint32(headerAt/2 - 1) //nolint:gosec // G115: program size is bounded by shadow memory
	copy(code[2:], body)

	var buf [binaryInfoWords * 4]byte
	copy(buf[0:7], binaryInfoSignature[:])
	buf[7] = 1
	binary.LittleEndian.PutUint32(buf[8:], uint32(headerAt*4)) //nolint:gosec // G115: see above
	binary.LittleEndian.PutUint32(buf[16:], hash0)
	binary.LittleEndian.PutUint32(buf[24:], crc)
	for i := range binaryInfoWords {
		code[headerAt+i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return code
}
