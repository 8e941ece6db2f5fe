package dice

// Primitives supplies the fixed-range rolls the salvage rules are written in.
// Every value is uniformly distributed and inclusive of both bounds.
type Primitives interface {
	// CoinFlip returns 1 or 2.
	CoinFlip() int
	// D6 returns a value in [1, 6].
	D6() int
	// D10 returns a value in [1, 10].
	D10() int
	// D100 returns a value in [1, 100].
	D100() int
}

// SourcePrimitives implements Primitives on top of a Source.
type SourcePrimitives struct {
	src Source
}

// NewPrimitives returns Primitives drawing from src.
//
// Precondition: src must be non-nil.
func NewPrimitives(src Source) *SourcePrimitives {
	return &SourcePrimitives{src: src}
}

// CoinFlip returns 1 or 2.
func (p *SourcePrimitives) CoinFlip() int { return p.die(2) }

// D6 returns a value in [1, 6].
func (p *SourcePrimitives) D6() int { return p.die(6) }

// D10 returns a value in [1, 10].
func (p *SourcePrimitives) D10() int { return p.die(10) }

// D100 returns a value in [1, 100].
func (p *SourcePrimitives) D100() int { return p.die(100) }

func (p *SourcePrimitives) die(sides int) int {
	return p.src.Intn(sides) + 1
}
