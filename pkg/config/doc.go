// Package config loads directive definitions from YAML or JSON files so that
// applications can declare their own component variants:
//
//	directives:
//	  - name: vue
//	  - name: island
//	    base: inline
//	    wrapper: client-only
//	    marker: "v-bind:"
//	    inner: section
//	    defaults:
//	      data-hydrate: lazy
//	      ssr: true
//
// The defaults mapping keeps the order it is written in.
package config
