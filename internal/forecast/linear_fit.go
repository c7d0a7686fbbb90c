package forecast

import (
	"fmt"
	"math"
)

// Fit: Basit doğrusal regresyon sonucu.
type Fit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RValue    float64 `json:"r_value"`
}

// LinearFit: En küçük kareler doğrusu ve korelasyon katsayısı.
// y'nin varyansı sıfırsa r_value 0 olarak raporlanır.
func LinearFit(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, fmt.Errorf("x ve y aynı uzunlukta olmalı (%d != %d)", len(x), len(y))
	}
	if len(x) < 2 {
		return Fit{}, fmt.Errorf("doğrusal uyum için en az 2 nokta gerekli")
	}

	n := float64(len(x))
	var sumX, sumY float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var ssXX, ssYY, ssXY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		ssXX += dx * dx
		ssYY += dy * dy
		ssXY += dx * dy
	}

	if ssXX == 0 {
		return Fit{}, fmt.Errorf("x değerlerinin tamamı aynı, eğim tanımsız")
	}

	slope := ssXY / ssXX
	intercept := meanY - slope*meanX

	r := 0.0
	if ssYY > 0 {
		r = ssXY / math.Sqrt(ssXX*ssYY)
	}

	return Fit{Slope: slope, Intercept: intercept, RValue: r}, nil
}
