package regs

import "testing"

func TestBuildProgramCodeRoundTrip(t *testing.T) {
	body := []uint32{0x11111111, 0x22222222, 0x33333333}
	pgm := ShaderProgram{Address: 0x1000, Code: BuildProgramCode(body, 0xdeadbeef, 0x12345678)}

	bi := GetBinaryInfo(&pgm)
	if !bi.Valid() {
		t.Fatal("expected valid binary info")
	}
	if got, want := bi.ShaderHash(), uint64(0xdeadbeef12345678); got != want {
		t.Errorf("ShaderHash = %#x, want %#x", got, want)
	}

	params := GetParams(&pgm)
	if params.Hash != bi.ShaderHash() {
		t.Errorf("params hash = %#x, want %#x", params.Hash, bi.ShaderHash())
	}
	if len(params.Code) != 6 {
		t.Fatalf("len(params.Code) = %d, want 6", len(params.Code))
	}
	if params.Code[2] != body[0] || params.Code[4] != body[2] {
		t.Errorf("params.Code does not contain the body: %#x", params.Code)
	}
}

func TestGetBinaryInfoInvalid(t *testing.T) {
	tests := []struct {
		name string
		code []uint32
	}{
		{"empty", nil},
		{"no token", []uint32{0, 0, 0, 0}},
		{"offset out of range", []uint32{TokenMovVccHi, 100}},
		{"bad signature", []uint32{TokenMovVccHi, 0, 1, 2, 3, 4, 5, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgm := ShaderProgram{Address: 1, Code: tt.code}
			bi := GetBinaryInfo(&pgm)
			if bi.Valid() {
				t.Error("expected invalid binary info")
			}
		})
	}
}

func TestGetParamsUserData(t *testing.T) {
	pgm := ShaderProgram{
		Address:  1,
		Code:     BuildProgramCode(nil, 1, 2),
		Settings: ProgramSettings{NumUserRegs: 3},
	}
	pgm.UserData[0], pgm.UserData[1], pgm.UserData[2], pgm.UserData[3] = 7, 8, 9, 10
	params := GetParams(&pgm)
	if len(params.UserData) != 3 || params.UserData[2] != 9 {
		t.Errorf("UserData = %v, want [7 8 9]", params.UserData)
	}
}

func TestColorMask(t *testing.T) {
	var m ColorMask
	m.SetMask(1, 0xF)
	m.SetMask(3, 0x5)
	if m.GetMask(0) != 0 {
		t.Errorf("GetMask(0) = %#x, want 0", m.GetMask(0))
	}
	if m.GetMask(1) != 0xF {
		t.Errorf("GetMask(1) = %#x, want 0xF", m.GetMask(1))
	}
	if m.GetMask(3) != 0x5 {
		t.Errorf("GetMask(3) = %#x, want 0x5", m.GetMask(3))
	}
	m.SetMask(1, 0x2)
	if m.GetMask(1) != 0x2 {
		t.Errorf("GetMask(1) after overwrite = %#x, want 0x2", m.GetMask(1))
	}
}

func TestPolygonControl(t *testing.T) {
	tests := []struct {
		name string
		pc   PolygonControl
		cull CullMode
		mode PolygonMode
		bias bool
	}{
		{"defaults", PolygonControl{}, CullNone, PolygonFill, false},
		{"cull back", PolygonControl{CullBack: true}, CullBack, PolygonFill, false},
		{"cull both", PolygonControl{CullFront: true, CullBack: true}, CullFrontAndBack, PolygonFill, false},
		{"wireframe", PolygonControl{EnablePolygonMode: true, PolyModeFront: PolygonLine}, CullNone, PolygonLine, false},
		{"mode ignored when disabled", PolygonControl{PolyModeFront: PolygonPoint}, CullNone, PolygonFill, false},
		{"offset", PolygonControl{PolyOffsetBackEnable: true}, CullNone, PolygonFill, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pc.CullingMode(); got != tt.cull {
				t.Errorf("CullingMode = %d, want %d", got, tt.cull)
			}
			if got := tt.pc.PolyMode(); got != tt.mode {
				t.Errorf("PolyMode = %d, want %d", got, tt.mode)
			}
			if got := tt.pc.NeedsBias(); got != tt.bias {
				t.Errorf("NeedsBias = %v, want %v", got, tt.bias)
			}
		})
	}
}

func TestStageEnable(t *testing.T) {
	var s StageEnable
	if !s.IsStageEnabled(StageSlotFragment) || !s.IsStageEnabled(StageSlotVertex) {
		t.Error("vertex and fragment stages must always be enabled")
	}
	if s.IsStageEnabled(StageSlotHull) {
		t.Error("hull stage enabled without HsEnable")
	}
	s.HsEnable = true
	if !s.IsStageEnabled(StageSlotHull) {
		t.Error("hull stage disabled with HsEnable")
	}
	if s.IsStageEnabled(MaxShaderStages) {
		t.Error("out of range slot reported enabled")
	}
}

func TestMiscRegisters(t *testing.T) {
	if got := (AAConfig{MsaaNumSamples: 2}).NumSamples(); got != 4 {
		t.Errorf("NumSamples = %d, want 4", got)
	}
	cs := ComputeProgram{LdsSize: 2}
	if got := cs.SharedMemSize(); got != 1024 {
		t.Errorf("SharedMemSize = %d, want 1024", got)
	}
	ctl := VsOutputControl{ClipDistanceEnable: 0x81, CullDistanceEnable: 0x02}
	if !ctl.IsClipDistEnabled(0) || !ctl.IsClipDistEnabled(7) || ctl.IsClipDistEnabled(1) {
		t.Errorf("clip distance bits decoded wrong for %#x", ctl.ClipDistanceEnable)
	}
	if !ctl.IsCullDistEnabled(1) {
		t.Error("cull distance 1 not decoded")
	}

	var r Regs
	if r.ProgramForStage(StageSlotVertex) != &r.VsProgram {
		t.Error("ProgramForStage(vertex) did not return the VS block")
	}
	if r.ProgramForStage(7) != nil {
		t.Error("ProgramForStage(7) should be nil")
	}
	cb := ColorBuffer{Base: 0x1000, Info: ColorBufferInfo{Format: DataFormat8_8_8_8}}
	if !cb.Bound() {
		t.Error("color buffer with base and format should be bound")
	}
}
