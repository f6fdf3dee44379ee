// Package pagedef loads declarative page definitions from YAML or JSON and
// builds layout.Page trees from them. A file holds a "pages" map keyed by
// page id; each page lists page-level field configs, behaviour rules and a
// tree of nodes. Every node entry names exactly one kind:
//
//	pages:
//	  customer_edit:
//	    name: customer
//	    fields:
//	      email: {renderer: input, subtype: email, required: true}
//	    nodes:
//	      - form:
//	          action: /customers/1
//	          method: patch
//	          nodes:
//	            - field: email
//	            - row:
//	                nodes:
//	                  - column: {width: half, nodes: [{field: phone}]}
//
// The store returned by LoadFS is immutable and safe for concurrent use.
package pagedef
