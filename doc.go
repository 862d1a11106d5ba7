// Package crucible finds the cheapest route across a grid of digit costs for
// a cart that cannot turn at will: it may never reverse, must keep going
// straight for a minimum number of moves before turning, and may not go
// straight for more than a maximum number of moves.
//
// What is in the box:
//
//	gridgraph/: CostGrid (digits → costs), Graph (4-neighbour adjacency), Render
//	dijkstra/:  the run-length-constrained search and path reconstruction
//	profile/:   named (minRun, maxRun) pairs, loadable from YAML or JSON
//	telemetry/: slog helpers, OpenTelemetry metrics and spans, no-op variants
//
// The root package ties them together: Solve parses the grid once, builds the
// adjacency once, and runs one search per profile from the top-left cell to
// the bottom-right cell.
//
// Quick example:
//
//	report, err := crucible.Solve(ctx, text)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, a := range report.Answers {
//		fmt.Println(a.Profile.Name, a.Cost)
//	}
package crucible
