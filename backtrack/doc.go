// Package backtrack implements generic depth-first backtracking as a lazy
// sequence of solutions, independent of any concrete problem domain.
//
// What:
//
//   - All(root, p, opts...): enumerate every candidate accepted by Problem p,
//     reachable from root, as an iter.Seq in depth-first, left-to-right order.
//   - First(root, p, opts...): run the same walk but stop at the first
//     accepted candidate.
//   - Problem[C]: the four-callback contract (Reject, Accept, First, Next)
//     that induces the search tree. Funcs[C] adapts plain closures.
//
// Why:
//   - One engine, many domains: exact cover style puzzles, permutation
//     search, constraint satisfaction, anything shaped like "extend a
//     partial candidate or give up on it".
//   - Laziness for free: consumers range over solutions and may stop at any
//     point; the engine abandons the unexplored remainder of the tree
//     immediately, so "first solution", "any k solutions" and "all
//     solutions" are the same walk consumed differently.
//   - Determinism: no randomness, no reordering. The visit order is fully
//     determined by First and Next, which makes runs reproducible and
//     testable by exact sequence comparison.
//
// Key Types:
//
//   - Problem[C]: callback contract; C is the candidate type.
//   - Funcs[C]: function-field adapter implementing Problem[C].
//   - Option / Options: functional options (context, stats, node budget).
//   - Stats: Visited / Rejected / Accepted counters for one run.
//
// Semantics:
//
//   - Reject(c) == true prunes c and its whole subtree; siblings continue.
//   - Accept(c) == true yields c and the walk still descends into c's
//     extensions, because a solution may have solution descendants.
//     Domains whose solutions are always leaves simply return no extension
//     from First at such candidates.
//   - A candidate may be both rejected and never accepted; Reject is
//     consulted first and short-circuits Accept.
//
// Complexity:
//
//   - Time: O(size of the pruned tree) callback invocations; each candidate
//     is entered exactly once.
//   - Memory: O(depth) stack frames; the engine itself allocates nothing
//     per node.
//
// Termination and panics:
//
//   - The sequence ends when the tree is exhausted, the consumer breaks,
//     the context is done, or the MaxNodes budget is spent. None of these
//     produce an error value; callers needing the distinction inspect
//     ctx.Err() or Stats.
//   - All panics on a nil Problem. Funcs panics on its first use of a nil
//     callback field. Both are programming errors, not runtime conditions.
//
// Functions:
//
//   - All[C](root C, p Problem[C], opts ...Option) iter.Seq[C]
//   - First[C](root C, p Problem[C], opts ...Option) (C, bool)
//   - DefaultOptions(), WithContext(), WithStats(), WithMaxNodes()
//
// See example_test.go for a runnable tour: binary-string enumeration and an
// N-queens adapter in a dozen lines each.
package backtrack
