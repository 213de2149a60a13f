package dotwriter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fuzzpetri/fuzzpetri/scalarnet"
)

// WriteScalar renders net as a DOT digraph, mirroring WriteFuzzy but
// for the unweighted scalar-net dialect (no arc labels).
func WriteScalar(net *scalarnet.Net) string {
	var b strings.Builder
	b.WriteString("digraph G{ \n rankdir=LR; ")

	placeLabel := make([]string, net.PlaceCount())
	b.WriteString("subgraph place {\n        graph [shape=circle,color=gray];node [shape=circle,fixedsize=true,width=0.4];")
	for p := 0; p < net.PlaceCount(); p++ {
		label := scalarPlaceLabel(net, p)
		placeLabel[p] = label
		fmt.Fprintf(&b, "\"%s\";", label)
	}
	b.WriteString("}\n")

	transID := make([]string, net.TransitionCount())
	b.WriteString("subgraph trans {\n        node [style=filled fillcolor=black shape=rect height=1 width=0.05];\n")
	for t := 0; t < net.TransitionCount(); t++ {
		id := "t" + strconv.Itoa(t)
		transID[t] = id
		label := transitionLabel(net.IsOutputTransition(t), t, net.Delay(t))
		fmt.Fprintf(&b, "%s[label=\"\"xlabel=<<FONT POINT-SIZE='15'> %s</FONT>>];\n", id, label)
	}
	b.WriteString("}\n")

	for p := 0; p < net.PlaceCount(); p++ {
		for _, t := range net.TransitionsAfter(p) {
			fmt.Fprintf(&b, "\"%s\"->%s;\n", placeLabel[p], transID[t])
		}
	}
	for t := 0; t < net.TransitionCount(); t++ {
		for _, p := range net.PlacesAfter(t) {
			fmt.Fprintf(&b, "%s->\"%s\";\n", transID[t], placeLabel[p])
		}
	}

	b.WriteString("\n}")
	return b.String()
}

func scalarPlaceLabel(net *scalarnet.Net, p int) string {
	var b strings.Builder
	if net.IsInputPlace(p) {
		b.WriteByte('i')
	}
	b.WriteByte('P')
	b.WriteString(strconv.Itoa(p))
	if !net.InitialMarking(p).IsPhi() {
		b.WriteString("●")
	}
	return b.String()
}
