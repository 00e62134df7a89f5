// Package component turns a component name plus caller supplied attributes
// into the start and end tags of a Vue-style dynamic component wrapper:
//
//	<component is="user-card" :active="true" :tags="[&quot;a&quot;]">
//
// Attribute values are classified once, at the boundary, into a small closed
// set of kinds (see Value). Booleans, numbers and structured values become
// dynamic bindings whose names carry the variant's binding marker; strings and
// nulls stay plain attributes. Names are normalised to kebab-case.
//
// A Variant is plain configuration: the built-in Basic and Inline variants only
// differ in their default attributes.
package component
