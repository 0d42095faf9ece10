package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// ControlAttr carries the stable identifier of a clickable control.
const ControlAttr = "data-control"

// ControlID joins identifier parts: ControlID("cart", "3", "remove") = "cart:3:remove".
func ControlID(parts ...string) string {
	return strings.Join(parts, ":")
}

func SplitControl(id string) []string {
	return strings.Split(id, ":")
}

func Control(n *html.Node) string {
	return Attr(n, ControlAttr)
}

// ByControl finds the element carrying the given control identifier.
func ByControl(root *html.Node, id string) *html.Node {
	if id == "" {
		return nil
	}
	return Query(root, WithAttrValue(ControlAttr, id))
}
