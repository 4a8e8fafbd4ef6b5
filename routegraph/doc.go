// Package routegraph builds the in-memory flight route index used by path
// searches.
//
// A Graph holds three mappings built once from the airport and route tables:
//
//   - airport code → Airport
//   - airport code → outgoing Edges, in route table order
//   - city key ("City, Country") → airport codes located in that city
//
// Airports whose IATA code is blank or the `\N` marker are never indexed, so
// they can be neither endpoints nor via-points. A route whose destination code
// is not indexed is still recorded, with a nil Edge.Destination; every
// consumer must skip such edges. Routes whose source code is not indexed are
// dropped and counted in Stats.
//
// Build fails fast: a short row, an unparseable number or a duplicate airport
// code aborts with a *DataFormatError and no partial graph is returned.
//
// A Graph has no mutating methods and may be shared by concurrent readers.
package routegraph
