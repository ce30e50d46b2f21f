// Package graph evaluates a decision graph.
//
// A Graph is built once per request from flat node descriptions. Calculate
// then runs three phases:
//
//  1. Topology validation. Every connection must resolve to a block and
//     every edge must join kinds the engine knows how to feed:
//
//     matrix      -> weights
//     weights     -> method, correlation, visualization
//     method      -> ranking, correlation
//     ranking     -> correlation, visualization
//     correlation -> visualization
//
//  2. Seeding. Blocks carrying user values (method INPUT) store them
//     without a matrix, and rankings fed by such methods derive positions
//     from them.
//
//  3. The walk. Each matrix drives its weights, methods and rankings in
//     connection order, then correlations and visualizations aggregate the
//     results tagged with that matrix. A graph without matrices aggregates
//     the seeded values instead.
//
// Blocks cache their results, so a shared ancestor is computed once per
// (matrix, weights) pair no matter how many descendants reach it.
//
// The first error aborts the walk and is returned as a *calcerr.Error.
package graph
