// Package node implements the six block kinds of a decision graph.
//
// Every block is built once per request from its flat description by Build,
// which validates kind-specific data and checks method names against the
// registry, so a request naming an unknown method fails before evaluation
// starts. The set of kinds is closed: Node is implemented only by the types
// in this package, and the engine dispatches on Kind.
//
// Calculating blocks keep their results in an ordered cache keyed by the
// originating matrix (and, for methods and rankings, the weights block and
// method block that fed them). Repeated requests for a key are served from
// the cache, so a block shared by several downstream blocks is computed
// once. Results produced without a matrix, from user-supplied INPUT vectors,
// carry no matrix id.
package node
