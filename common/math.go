// Package common holds small numeric helpers shared by the viewer.
package common

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// LerpByte interpolates between two 8-bit channel values.
func LerpByte(a, b uint8, t float32) uint8 {
	return uint8(Lerp(float32(a), float32(b), Clamp01(t)) + 0.5)
}
