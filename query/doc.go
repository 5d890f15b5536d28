// Package query drives interchangeable integer set implementations through
// an operation stream and reports membership answers.
//
// A run is configured once (Config), the implementation is chosen once
// (Select), and a Runner then consumes the whole stream: non-negative tokens
// are inserted or queried depending on the current mode, negative tokens
// toggle the mode, and the run ends at end of input. In validation mode
// every answer is cross-checked against a hash set oracle and the first
// disagreement aborts the run.
package query
