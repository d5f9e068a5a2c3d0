package utils

// ClampUnit limits a sample to the [-1, 1] range.
func ClampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}

	return x
}

// Float32ToInt16 converts a unit-range sample to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	x = ClampUnit(x)

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 converts a 16-bit PCM sample to the unit range.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// PCMToFloat32 normalizes an integer PCM sample by its source bit depth.
// Unrecognized depths are treated as 16-bit.
func PCMToFloat32(v int, bitDepth int) float32 {
	var maxVal float32

	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0
	}

	return float32(v) / maxVal
}
