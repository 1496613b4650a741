// Package form renders one bound model field as a labelled block: a
// container div holding the caption, an input control inferred from the
// field's name and storage kind (or chosen explicitly), and the field's
// validation messages.
//
//	b, _ := form.New(record)
//	html, err := b.RenderField("email", form.FieldOptions{})
//
// Output differences between the "foundation" and "rails" flavours are
// captured by Conventions, so both are served by the same Builder.
package form
