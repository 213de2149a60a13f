// Package dotwriter renders a fuzzynet.Net or scalarnet.Net as a
// Graphviz DOT digraph: places as circle nodes, transitions as filled
// rectangles, arcs labeled with non-unit weights (fuzzynet) or plain
// (scalarnet, whose arcs are unweighted).
package dotwriter
