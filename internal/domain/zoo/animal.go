package zoo

import (
	"fmt"
	"math"
	"strconv"
)

const (
	InitialHungerLevel = 50.0

	MinHungerLevel = 0.0
	MaxHungerLevel = 100.0

	MinAdmissionWeight = 1.0
	MaxAdmissionWeight = 100.0
	WeightFloor        = 0.5

	// Gain factors applied to a food's hunger reduction.
	SatedWeightGain  = 0.3
	FedWeightGain    = 0.1
	MaxHungerPerWait = 15
	MaxWeightPerWait = 5
)

// Rand is the source of integer draws used by fruit picking and waiting.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Animal struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Weight      float64 `json:"weight"`
	HungerLevel float64 `json:"hunger_level"`
}

func NewAnimal(id, name, species string, weight float64) *Animal {
	return &Animal{
		ID:          id,
		Name:        name,
		Species:     species,
		Weight:      weight,
		HungerLevel: InitialHungerLevel,
	}
}

// Feed lowers hunger by the food's reduction. An animal pushed past zero
// hunger is sated and gains more weight than one that is merely fed.
func (a *Animal) Feed(food Edible) {
	reduction := food.HungerReduction()
	a.HungerLevel -= reduction
	if a.HungerLevel < MinHungerLevel {
		a.HungerLevel = MinHungerLevel
		a.Weight += reduction * SatedWeightGain
		return
	}
	a.Weight += reduction * FedWeightGain
}

// Wait advances the animal by one time step: it gets hungrier and burns
// some weight.
func (a *Animal) Wait(rng Rand) {
	a.HungerLevel += float64(rng.Intn(MaxHungerPerWait))
	if a.HungerLevel > MaxHungerLevel {
		a.HungerLevel = MaxHungerLevel
	}

	a.Weight -= float64(rng.Intn(MaxWeightPerWait))
	if a.Weight < WeightFloor {
		a.Weight = WeightFloor
	}
}

func (a *Animal) IsValid() bool {
	if a.Name == "" || a.Species == "" {
		return false
	}
	return a.Weight >= MinAdmissionWeight && a.Weight <= MaxAdmissionWeight
}

func (a *Animal) String() string {
	return fmt.Sprintf("%s the %s, Hunger: %s, Weight: %s",
		a.Name, a.Species, formatNumber(a.HungerLevel), formatNumber(roundTo(a.Weight, 2)))
}

func (a *Animal) snapshot() map[string]any {
	return map[string]any{
		"id":           a.ID,
		"name":         a.Name,
		"species":      a.Species,
		"weight":       a.Weight,
		"hunger_level": a.HungerLevel,
	}
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(v*scale) / scale
}

// formatNumber prints the shortest decimal that round-trips, so 50 renders as
// "50" and 50-10/3 keeps every digit.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
