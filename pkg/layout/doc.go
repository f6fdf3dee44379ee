// Package layout composes server-rendered HTML pages from a tree of nodes.
//
// A Page is built through nested builder calls and rendered once:
//
//	page := layout.NewPage(cfg)
//	err := page.Section(func(s *layout.Section) error {
//		s.Caption("Customer")
//		return s.Form(func(f *layout.Form) error {
//			f.Action("/customers")
//			return f.Row(func(r *layout.Row) error {
//				return r.Column(func(c *layout.Column) error {
//					c.AddField("name", nil)
//					return nil
//				})
//			})
//		})
//	})
//	page.AddCSRFTag(layout.CSRFTag("_csrf", token))
//	html, err := page.Render()
//
// Containers are invisible when all of their children are invisible and are
// then skipped entirely. Hidden nodes are still emitted so client scripts can
// reveal them.
package layout
