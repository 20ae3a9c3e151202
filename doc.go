// Package pressure computes the best total release of a valve network under
// a time budget, for one agent or for two agents moving in lockstep.
//
// A network is a set of named nodes joined by one-way tunnels. Some nodes
// hold a valve with a positive yield; opening it takes one tick and releases
// yield × (ticks remaining) in total. Walking a tunnel takes its cost in
// ticks (one in the plain text input).
//
// Layout:
//
//	core/      immutable Graph, Builder, and the Set bitmask of opened valves
//	parse/     line records ("Valve AA has flow rate=0; …") and JSON documents
//	canon/     canonical state keys and the visited table behind deduplication
//	explore/   exhaustive tick-level BFS explorers (Single, Dual, Solve)
//	bfs/       hop distances on unit-cost graphs
//	dijkstra/  shortest travel times on weighted graphs
//	route/     compressed valve-to-valve solver returning activation plans
//	config/    HCL run configuration
//	service/   request/response layer shared by CLI, HTTP, and Lambda
//	server/    fiber HTTP surface (POST /solve, GET /healthz)
//	cmd/       pressure (cobra CLI) and pressure-lambda
//
// Quick example, the ten-valve worked network:
//
//	pressure solve testdata/example.txt
//	solo: 1651 (agents=1 budget=30 …)
//	duo: 1707 (agents=2 budget=26 …)
package pressure
