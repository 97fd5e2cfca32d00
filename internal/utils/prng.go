// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Uniform возвращает число, равномерно распределённое в [min, max).
func (s *PRNGService) Uniform(min, max float64) float64 {
	return min + (max-min)*s.rng.Float64()
}

// ChooseWeighted выполняет взвешенный случайный выбор и возвращает индекс
// выбранного веса. Веса не обязаны давать в сумме единицу.
func (s *PRNGService) ChooseWeighted(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}

	if total <= 0 {
		// Если сумма весов некорректна, возвращаем первый элемент по умолчанию
		return 0
	}

	r := s.rng.Float64() * total
	upto := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if upto+w > r {
			return i
		}
		upto += w
	}

	// Сюда попадаем только из-за погрешности округления
	return len(weights) - 1
}
