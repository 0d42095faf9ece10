package dom

import "golang.org/x/net/html"

// Matcher reports whether an element node is selected.
type Matcher func(n *html.Node) bool

// QueryAll returns matching elements below root in document order.
func QueryAll(root *html.Node, match Matcher) []*html.Node {
	var results []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			results = append(results, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return results
}

// Query returns the first match or nil.
func Query(root *html.Node, match Matcher) *html.Node {
	if found := QueryAll(root, match); len(found) > 0 {
		return found[0]
	}
	return nil
}

// ByID finds the element with the given id attribute.
func ByID(root *html.Node, id string) *html.Node {
	return Query(root, func(n *html.Node) bool {
		return Attr(n, "id") == id
	})
}

// Closest walks from n up through its ancestors.
func Closest(n *html.Node, match Matcher) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && match(n) {
			return n
		}
	}
	return nil
}

func WithClass(class string) Matcher {
	return func(n *html.Node) bool { return HasClass(n, class) }
}

func WithAttr(key string) Matcher {
	return func(n *html.Node) bool { return HasAttr(n, key) }
}

func WithAttrValue(key, val string) Matcher {
	return func(n *html.Node) bool {
		v, ok := LookupAttr(n, key)
		return ok && v == val
	}
}

// All combines matchers with a logical and.
func All(ms ...Matcher) Matcher {
	return func(n *html.Node) bool {
		for _, m := range ms {
			if !m(n) {
				return false
			}
		}
		return true
	}
}
