package delaunay

import (
	"strings"

	"github.com/pkg/errors"
)

// Algorithm - стратегия построения триангуляции
type Algorithm int

const (
	BruteForce Algorithm = iota
	Incremental
	DivideAndConquer
)

var algorithmNames = [...]string{
	BruteForce:       "brute-force",
	Incremental:      "incremental",
	DivideAndConquer: "divide-and-conquer",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return "unknown"
	}
	return algorithmNames[a]
}

func Algorithms() []Algorithm {
	return []Algorithm{BruteForce, Incremental, DivideAndConquer}
}

// ParseAlgorithm нужен только CLI и вебу: движок с именами не работает.
// Принимает и короткие имена: bf, inc, dc.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "brute-force", "bruteforce", "brute", "bf":
		return BruteForce, nil
	case "incremental", "bowyer-watson", "inc":
		return Incremental, nil
	case "divide-and-conquer", "dc", "dnc":
		return DivideAndConquer, nil
	}
	return 0, errors.Errorf("unknown algorithm %q (want one of %s)", name, strings.Join(algorithmNames[:], ", "))
}
