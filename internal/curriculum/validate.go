package curriculum

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// validateModules performs all structural checks on the given course.
// Returns a combined error describing all problems found, or nil if valid.
func validateModules(modules []Module) error {
	var errs []string

	if len(modules) == 0 {
		errs = append(errs, "course has no modules")
	}

	moduleIDs := make(map[string]bool, len(modules))
	lessonIDs := make(map[string]bool)
	for _, m := range modules {
		if m.ID == "" {
			errs = append(errs, fmt.Sprintf("module %q has an empty ID", m.Title))
		}
		if moduleIDs[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		moduleIDs[m.ID] = true

		if len(m.Lessons) == 0 {
			errs = append(errs, fmt.Sprintf("module %q has no lessons", m.ID))
		}

		for _, l := range m.Lessons {
			if l.ID == "" {
				errs = append(errs, fmt.Sprintf("module %q has a lesson with an empty ID", m.ID))
				continue
			}
			if lessonIDs[l.ID] {
				errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
			}
			lessonIDs[l.ID] = true

			if l.Title == "" {
				errs = append(errs, fmt.Sprintf("lesson %q has no title", l.ID))
			}
			if l.Module != "" && l.Module != m.ID {
				errs = append(errs, fmt.Sprintf("lesson %q claims module %q but is listed under %q", l.ID, l.Module, m.ID))
			}
			if l.IsChallenge() && !l.HasPlayground() {
				errs = append(errs, fmt.Sprintf("challenge lesson %q has no default code", l.ID))
			}
			if err := checkFragment(l.Fragment()); err != nil {
				errs = append(errs, fmt.Sprintf("lesson %q: %v", l.ID, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// checkFragment rejects demo markup that carries script or event handlers.
// The preview surface disables scripting anyway; this keeps the catalog honest.
func checkFragment(fragment string) error {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return fmt.Errorf("parse preview fragment: %w", err)
	}
	if len(nodes) == 0 {
		return fmt.Errorf("preview fragment is empty")
	}
	var bad error
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if bad != nil {
			return
		}
		if n.Type == html.ElementNode {
			if n.Data == "script" {
				bad = fmt.Errorf("preview fragment contains <script>")
				return
			}
			for _, a := range n.Attr {
				if strings.HasPrefix(strings.ToLower(a.Key), "on") {
					bad = fmt.Errorf("preview fragment has event handler %q", a.Key)
					return
				}
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return bad
}
