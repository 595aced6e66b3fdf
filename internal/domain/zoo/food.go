package zoo

const MaxFruitReduction = 10

type FoodKind string

const (
	FoodFruit FoodKind = "fruit"
	FoodMeat  FoodKind = "meat"
)

// Edible is anything an animal can be fed.
type Edible interface {
	HungerReduction() float64
}

type Fruit struct {
	Reduction float64 `json:"hunger_reduction"`
}

func NewFruit(reduction float64) Fruit {
	return Fruit{Reduction: reduction}
}

// RandomFruit picks a whole-number reduction in [0, MaxFruitReduction).
func RandomFruit(rng Rand) Fruit {
	return NewFruit(float64(rng.Intn(MaxFruitReduction)))
}

func (f Fruit) HungerReduction() float64 {
	return f.Reduction
}

// Meat is made from a slaughtered animal. Its value tracks the source
// animal's current weight rather than the weight at slaughter time.
type Meat struct {
	Source *Animal
}

func NewMeat(source *Animal) Meat {
	return Meat{Source: source}
}

func (m Meat) HungerReduction() float64 {
	if m.Source == nil {
		return 0
	}
	return m.Source.Weight / 3
}

var (
	_ Edible = Fruit{}
	_ Edible = Meat{}
)
