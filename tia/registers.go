package tia

// TIA register addresses, chip-local (bus.mapAddress already strips
// mirrors down to this 0x00-0x2c window). Grounded on
// hardware/memory/addresses/addresses.go's canonical symbol tables.
const (
	regCXM0P  = 0x00
	regCXM1P  = 0x01
	regCXP0FB = 0x02
	regCXP1FB = 0x03
	regCXM0FB = 0x04
	regCXM1FB = 0x05
	regCXBLPF = 0x06
	regCXPPMM = 0x07
	regINPT0  = 0x08
	regINPT1  = 0x09
	regINPT2  = 0x0a
	regINPT3  = 0x0b
	regINPT4  = 0x0c
	regINPT5  = 0x0d

	regVSYNC  = 0x00
	regVBLANK = 0x01
	regWSYNC  = 0x02
	regNUSIZ0 = 0x04
	regNUSIZ1 = 0x05
	regCOLUP0 = 0x06
	regCOLUP1 = 0x07
	regCOLUPF = 0x08
	regCOLUBK = 0x09
	regCTRLPF = 0x0a
	regREFP0  = 0x0b
	regREFP1  = 0x0c
	regPF0    = 0x0d
	regPF1    = 0x0e
	regPF2    = 0x0f
	regRESP0  = 0x10
	regRESP1  = 0x11
	regRESM0  = 0x12
	regRESM1  = 0x13
	regRESBL  = 0x14
	regAUDC0  = 0x15
	regAUDC1  = 0x16
	regAUDF0  = 0x17
	regAUDF1  = 0x18
	regAUDV0  = 0x19
	regAUDV1  = 0x1a
	regGRP0   = 0x1b
	regGRP1   = 0x1c
	regENAM0  = 0x1d
	regENAM1  = 0x1e
	regENABL  = 0x1f
	regHMP0   = 0x20
	regHMP1   = 0x21
	regHMM0   = 0x22
	regHMM1   = 0x23
	regHMBL   = 0x24
	regVDELP0 = 0x25
	regVDELP1 = 0x26
	regVDELBL = 0x27
	regRESMP0 = 0x28
	regRESMP1 = 0x29
	regHMOVE  = 0x2a
	regHMCLR  = 0x2b
	regCXCLR  = 0x2c
)

// Read services a CPU read from TIA address space.
func (t *TIA) Read(addr uint16) uint8 {
	switch addr {
	case regCXM0P:
		return t.collisions.CXM0P()
	case regCXM1P:
		return t.collisions.CXM1P()
	case regCXP0FB:
		return t.collisions.CXP0FB()
	case regCXP1FB:
		return t.collisions.CXP1FB()
	case regCXM0FB:
		return t.collisions.CXM0FB()
	case regCXM1FB:
		return t.collisions.CXM1FB()
	case regCXBLPF:
		return t.collisions.CXBLPF()
	case regCXPPMM:
		return t.collisions.CXPPMM()
	case regINPT0, regINPT1, regINPT2, regINPT3:
		return t.readPaddle(addr - regINPT0)
	case regINPT4:
		return t.fireButton[0]
	case regINPT5:
		return t.fireButton[1]
	}
	return 0
}

// readPaddle models the paddle capacitor's discharge against a
// host-supplied ramp: bit 7 flips once the ramp exceeds a fixed
// threshold, a simplification of the real RC-timed discharge curve
// that spec.md's §4.3 invites ("model paddle capacitor discharge").
func (t *TIA) readPaddle(i uint16) uint8 {
	if t.paddleRamp[i] >= 0x80 {
		return 0x80
	}
	return 0x00
}

// Write services a CPU write into TIA address space.
func (t *TIA) Write(addr uint16, data uint8) {
	switch addr {
	case regVSYNC:
		t.vsyncOn = data&0x02 != 0
	case regVBLANK:
		t.vblankOn = data&0x02 != 0
	case regWSYNC:
		t.rdyLow = true
	case regNUSIZ0:
		t.p0.WriteNUSIZ(data)
		t.m0.WriteNUSIZ(data)
	case regNUSIZ1:
		t.p1.WriteNUSIZ(data)
		t.m1.WriteNUSIZ(data)
	case regCOLUP0:
		t.colup0 = data
	case regCOLUP1:
		t.colup1 = data
	case regCOLUPF:
		t.colupf = data
	case regCOLUBK:
		t.colubk = data
	case regCTRLPF:
		t.pf.WriteCTRLPF(data)
		t.bl.Width = t.pf.BallSize
	case regREFP0:
		t.p0.WriteREFP(data)
	case regREFP1:
		t.p1.WriteREFP(data)
	case regPF0:
		t.pf.WritePF0(data)
	case regPF1:
		t.pf.WritePF1(data)
	case regPF2:
		t.pf.WritePF2(data)
	case regRESP0:
		t.p0.ResetPosition()
	case regRESP1:
		t.p1.ResetPosition()
	case regRESM0:
		t.m0.ResetPosition()
	case regRESM1:
		t.m1.ResetPosition()
	case regRESBL:
		t.bl.ResetPosition()
	case regAUDC0:
		t.audc0 = data
	case regAUDC1:
		t.audc1 = data
	case regAUDF0:
		t.audf0 = data
	case regAUDF1:
		t.audf1 = data
	case regAUDV0:
		t.audv0 = data
	case regAUDV1:
		t.audv1 = data
	case regGRP0:
		t.p0.WriteGRP(data)
		t.p1.CopyShadow()
	case regGRP1:
		t.p1.WriteGRP(data)
		t.p0.CopyShadow()
	case regENAM0:
		t.m0.WriteENAM(data)
	case regENAM1:
		t.m1.WriteENAM(data)
	case regENABL:
		t.bl.WriteENABL(data)
	case regHMP0:
		t.hmp0 = data
	case regHMP1:
		t.hmp1 = data
	case regHMM0:
		t.hmm0 = data
	case regHMM1:
		t.hmm1 = data
	case regHMBL:
		t.hmbl = data
	case regVDELP0:
		t.p0.WriteVDELP(data)
	case regVDELP1:
		t.p1.WriteVDELP(data)
	case regVDELBL:
		t.bl.WriteVDELBL(data)
	case regRESMP0:
		t.m0.WriteRESMP(data)
	case regRESMP1:
		t.m1.WriteRESMP(data)
	case regHMOVE:
		t.p0.ScheduleMotion(t.hmp0)
		t.p1.ScheduleMotion(t.hmp1)
		t.m0.ScheduleMotion(t.hmm0)
		t.m1.ScheduleMotion(t.hmm1)
		t.bl.ScheduleMotion(t.hmbl)
		t.hmoveRemaining = hmoveWindow
	case regHMCLR:
		t.hmp0, t.hmp1, t.hmm0, t.hmm1, t.hmbl = 0, 0, 0, 0, 0
	case regCXCLR:
		t.collisions.Clear()
	}
}
