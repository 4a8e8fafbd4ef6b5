package pathfinder

import (
	"errors"
	"fmt"

	"github.com/gewnthar/flightpath/utils"
)

// Sentinel errors for path queries.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("pathfinder: graph is nil")

	// ErrTrivialQuery is returned when source and destination are the same city.
	ErrTrivialQuery = errors.New("pathfinder: source and destination are the same city")

	// ErrUnknownCity is returned when a city key has no indexed airport.
	ErrUnknownCity = errors.New("pathfinder: unknown city")

	// ErrNoPath is returned by Reconstruct for a search that found nothing.
	ErrNoPath = errors.New("pathfinder: no path found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfinder: invalid option supplied")
)

// NoParent is the Parent index of a root node.
const NoParent = -1

// Node is one element of a backward path chain.
type Node struct {
	ID                 int
	Parent             int // NoParent for the root
	CityKey            string
	AirportCode        string // airport used to enter the city
	Airline            string // airline of the incoming leg, empty for the root
	FlightCount        int
	Stops              int // technical stops on the incoming leg only
	CumulativeDistance float64
}

// IsRoot reports whether n starts a chain.
func (n Node) IsRoot() bool {
	return n.Parent == NoParent
}

// NodeKey is the identity used for frontier de-duplication.
type NodeKey struct {
	CityKey string
	Airline string
}

// DedupPolicy decides which nodes count as the same frontier candidate.
type DedupPolicy int

const (
	// DedupCityAirline: same city key and same incoming airline.
	DedupCityAirline DedupPolicy = iota
	// DedupCity: same city key regardless of airline.
	DedupCity
)

// Key returns the identity of n under p.
func (p DedupPolicy) Key(n Node) NodeKey {
	if p == DedupCity {
		return NodeKey{CityKey: n.CityKey}
	}
	return NodeKey{CityKey: n.CityKey, Airline: n.Airline}
}

// Same reports whether a and b are the same candidate under p.
func (p DedupPolicy) Same(a, b Node) bool {
	return p.Key(a) == p.Key(b)
}

func (p DedupPolicy) String() string {
	switch p {
	case DedupCityAirline:
		return "city_airline"
	case DedupCity:
		return "city"
	default:
		return fmt.Sprintf("DedupPolicy(%d)", int(p))
	}
}

// ParseDedupPolicy maps a configuration value to a policy.
func ParseDedupPolicy(s string) (DedupPolicy, error) {
	switch s {
	case "", "city_airline":
		return DedupCityAirline, nil
	case "city":
		return DedupCity, nil
	default:
		return 0, fmt.Errorf("%w: unknown dedup policy %q", ErrOptionViolation, s)
	}
}

// Option configures a search.
type Option func(*Options)

// Options holds the parameters of a search.
type Options struct {
	// Dedup selects the frontier identity. Default DedupCityAirline.
	Dedup DedupPolicy

	// Distance computes leg distances. Default utils.DistanceKm.
	Distance utils.DistanceFunc

	// OnExpand is called when a city is dequeued for expansion.
	OnExpand func(cityKey string, flightCount int)

	err error
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Dedup:    DedupCityAirline,
		Distance: utils.DistanceKm,
		OnExpand: func(string, int) {},
	}
}

// WithDedupPolicy sets the frontier de-duplication policy.
func WithDedupPolicy(p DedupPolicy) Option {
	return func(o *Options) {
		switch p {
		case DedupCityAirline, DedupCity:
			o.Dedup = p
		default:
			o.err = fmt.Errorf("%w: unknown dedup policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithDistance sets the leg distance formula.
func WithDistance(fn utils.DistanceFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Distance = fn
		}
	}
}

// WithOnExpand registers a callback run for every expanded city.
func WithOnExpand(fn func(cityKey string, flightCount int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a search. When Found is false the arena may still
// hold the nodes that were generated.
type Result struct {
	Source      string
	Destination string
	Found       bool
	Expanded    int // cities expanded

	nodes    []Node
	terminal int
}

// Terminal returns the goal node of a successful search.
func (r *Result) Terminal() (Node, bool) {
	if r == nil || !r.Found {
		return Node{}, false
	}
	return r.nodes[r.terminal], true
}

// Node returns the arena node with the given id.
func (r *Result) Node(id int) (Node, bool) {
	if r == nil || id < 0 || id >= len(r.nodes) {
		return Node{}, false
	}
	return r.nodes[id], true
}

// NodeCount is the number of nodes the search generated.
func (r *Result) NodeCount() int {
	if r == nil {
		return 0
	}
	return len(r.nodes)
}

// Chain returns the winning chain from the root to the goal, or nil.
func (r *Result) Chain() []Node {
	if r == nil || !r.Found {
		return nil
	}
	var chain []Node
	for id := r.terminal; id != NoParent; id = r.nodes[id].Parent {
		chain = append(chain, r.nodes[id])
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
