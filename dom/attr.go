package dom

import (
	"strings"

	"golang.org/x/net/html"
)

func Attr(n *html.Node, key string) string {
	val, _ := LookupAttr(n, key)
	return val
}

func LookupAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func HasAttr(n *html.Node, key string) bool {
	_, ok := LookupAttr(n, key)
	return ok
}

func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func DelAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	classes := strings.Fields(Attr(n, "class"))
	SetAttr(n, "class", strings.Join(append(classes, class), " "))
}

func RemoveClass(n *html.Node, class string) {
	classes := strings.Fields(Attr(n, "class"))
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		DelAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

const hiddenStyle = "display: none"

// Hide sets an inline display: none, keeping the element in the tree.
func Hide(n *html.Node) {
	SetAttr(n, "style", hiddenStyle)
}

// Show drops the inline style set by Hide.
func Show(n *html.Node) {
	if IsHidden(n) {
		DelAttr(n, "style")
	}
}

func IsHidden(n *html.Node) bool {
	style := strings.ReplaceAll(Attr(n, "style"), " ", "")
	return strings.Contains(style, "display:none")
}
