// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp01 ограничивает t отрезком [0, 1].
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// LerpRGB смешивает два 8-битных канала.
func LerpRGB(from, to uint8, t float32) uint8 {
	return uint8(Lerp(float32(from), float32(to), Clamp01(t)) + 0.5)
}
