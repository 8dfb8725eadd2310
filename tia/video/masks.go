package video

// Bit masks for the TIA graphics registers this package decodes,
// grounded on hardware/tia/video/masks.go verbatim.
const (
	CTRLPFPriorityMask  = 0x04
	CTRLPFScoremodeMask = 0x02
	CTRLPFReflectedMask = 0x01
	REFPxMask           = 0x08
	VDELPxMask          = 0x01
	RESMPxMask          = 0x02
	ENAxxMask           = 0x02
	HMxxMask            = 0xf0
	NUSIZxCopiesMask    = 0x07
	NUSIZxSizeMask      = 0x03
)

const ctrlPFBallSizeShift = 4
const nusizSizeShift = 4
