// Package ga declares the boundary of the generic genetic-algorithm driver
// that sits next to the mapping engine in the interpolation library.
//
// Only the contract lives here: member callbacks, search options, their
// validation and the Searcher interface. The search body is supplied by an
// external implementation; nothing in this module calls it.
//
// Contract of a Searcher:
//
//   - Keep a population of Options.PopulationSize members, each created
//     with Callbacks.GenerateRandom.
//   - Score members with Callbacks.Suitability (higher is better) and carry
//     the best Options.EliteCount members into every next generation.
//   - Produce offspring with Callbacks.Mutate (given the generation count)
//     and refine them with Callbacks.Tweak.
//   - Return the best member as soon as its suitability reaches
//     Options.SuitabilityTarget, or the best member seen when
//     Options.Timeout elapses or ctx is cancelled.
package ga
