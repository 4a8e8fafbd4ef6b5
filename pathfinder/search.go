package pathfinder

import (
	"fmt"

	"github.com/gewnthar/flightpath/models"
	"github.com/gewnthar/flightpath/routegraph"
)

// walker encapsulates the mutable state of one search.
type walker struct {
	graph    *routegraph.Graph
	opts     Options
	goal     string
	res      *Result
	queue    []int // node ids, FIFO
	queued   map[NodeKey]int
	explored map[string]bool
	hubs     map[string]bool
}

// Search runs a breadth-first search from the source city key to the
// destination city key. A search that exhausts the frontier is not an error:
// the returned Result has Found == false.
//
// Returns ErrGraphNil, ErrOptionViolation, ErrTrivialQuery or ErrUnknownCity
// before any traversal takes place.
func Search(g *routegraph.Graph, source, destination string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if source == destination {
		return nil, fmt.Errorf("%w: %q", ErrTrivialQuery, source)
	}
	for _, city := range []string{source, destination} {
		if !g.HasCity(city) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCity, city)
		}
	}

	w := &walker{
		graph:    g,
		opts:     o,
		goal:     destination,
		res:      &Result{Source: source, Destination: destination, terminal: NoParent},
		queued:   make(map[NodeKey]int),
		explored: make(map[string]bool),
		hubs:     make(map[string]bool),
	}
	w.seed(source)
	w.loop()
	return w.res, nil
}

// seed queues one root node per airport of the source city that has
// outgoing routes.
func (w *walker) seed(source string) {
	for _, code := range w.graph.CityAirports(source) {
		if !w.graph.HasRoutes(code) {
			continue
		}
		w.enqueue(Node{Parent: NoParent, CityKey: source, AirportCode: code})
	}
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		cur := w.dequeue()
		if w.explored[cur.CityKey] {
			continue
		}
		w.explored[cur.CityKey] = true
		w.res.Expanded++
		w.opts.OnExpand(cur.CityKey, cur.FlightCount)

		if w.expand(cur) {
			return
		}
	}
}

// expand generates the children of cur. It returns true once a child reaches
// the goal; that child becomes the terminal node.
func (w *walker) expand(cur Node) bool {
	from, _ := w.graph.Airport(cur.AirportCode)
	for _, code := range w.graph.CityAirports(cur.CityKey) {
		for _, e := range w.graph.Edges(code) {
			if !w.candidate(e) {
				continue
			}
			dst := e.Destination
			child := Node{
				Parent:      cur.ID,
				CityKey:     dst.CityKey,
				AirportCode: dst.Code,
				Airline:     e.Airline,
				FlightCount: cur.FlightCount + 1,
				Stops:       e.Stops,
				CumulativeDistance: cur.CumulativeDistance +
					w.opts.Distance(from.Latitude, from.Longitude, dst.Latitude, dst.Longitude),
			}
			if child.CityKey == w.goal {
				w.res.terminal = w.add(child)
				w.res.Found = true
				return true
			}
			if w.explored[child.CityKey] || w.queued[w.opts.Dedup.Key(child)] > 0 {
				continue
			}
			w.enqueue(child)
		}
	}
	return false
}

// candidate filters dangling edges and destinations that cannot serve as an
// intermediate hop.
func (w *walker) candidate(e models.Edge) bool {
	if !e.Valid() {
		return false
	}
	city := e.Destination.CityKey
	if city == w.goal {
		return true
	}
	hub, ok := w.hubs[city]
	if !ok {
		hub = w.graph.IsHub(city)
		w.hubs[city] = hub
	}
	return hub
}

// add stores n in the arena and returns its id.
func (w *walker) add(n Node) int {
	n.ID = len(w.res.nodes)
	w.res.nodes = append(w.res.nodes, n)
	return n.ID
}

func (w *walker) enqueue(n Node) {
	id := w.add(n)
	w.queue = append(w.queue, id)
	w.queued[w.opts.Dedup.Key(n)]++
}

func (w *walker) dequeue() Node {
	id := w.queue[0]
	w.queue = w.queue[1:]
	n := w.res.nodes[id]
	key := w.opts.Dedup.Key(n)
	if w.queued[key]--; w.queued[key] == 0 {
		delete(w.queued, key)
	}
	return n
}
