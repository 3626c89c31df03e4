// Package core wires the pipeline together: load configuration, walk the
// tree into a collector, then stream the sorted collections into the output
// file.
//
// Merge and List share the collection phase, so `codemerge list` shows
// exactly the files a merge of the same directory would write, in the same
// order.
package core
