package graph

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Fprint writes a table of the ports of a node or of a composite node and
// its members.
func Fprint(w io.Writer, e Evaluator) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	switch v := e.(type) {
	case interface{ Base() *Node }:
		printNode(tw, v.Base(), "")
	case interface{ Meta() *MetaNode }:
		printMetaNode(tw, v.Meta())
	default:
		fmt.Fprintf(tw, "%s\n", e.Name())
	}
	return tw.Flush()
}

func printMetaNode(tw io.Writer, v *MetaNode) {
	fmt.Fprintf(tw, "metanode %q\n", v.name)
	for _, key := range v.inputs.names {
		mi := v.inputs.byName[key]
		fmt.Fprintf(tw, "  in\t%s\t%d member(s)\t%s\n", key, len(mi.members), producerName(mi.Parent()))
	}
	for _, key := range v.outputs.names {
		out := v.outputs.byName[key]
		fmt.Fprintf(tw, "  out\t%s\t%s.%s\t%v\n", key, out.node.name, out.name, out.dd.Shape)
	}
	for _, node := range v.nodes {
		printNode(tw, node, "  ")
	}
}

func printNode(w io.Writer, n *Node, indent string) {
	state := "open"
	if n.typesUpdated {
		state = "closed"
	}
	if n.tainted {
		state += ", tainted"
	}
	fmt.Fprintf(w, "%snode %q [%s]\t%s\n", indent, n.name, state, n.labels.Text)
	for _, in := range n.inputs.all {
		dd := in.DD()
		fmt.Fprintf(w, "%s  in\t%s\t%s %s %v\t%s\n", indent, in.name, in.kind, dd.DType, dd.Shape, producerName(in.parent))
	}
	for _, out := range n.outputs.all {
		fmt.Fprintf(w, "%s  out\t%s\t%s %v\t%d consumer(s)\n", indent, out.name, out.dd.DType, out.dd.Shape, len(out.children))
	}
}

func producerName(out *Output) string {
	if out == nil {
		return "<unconnected>"
	}
	return "<- " + out.node.name + "." + out.name
}
