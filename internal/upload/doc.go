// Package upload accepts the single image file of product forms.
//
// Only parts whose declared content type is in [AllowedMIMETypes] are
// stored; anything else is dropped silently and the request continues as if
// no file had been sent. Accepted files are written under a name produced by
// [StoredName], which prefixes the original file name with a sortable UTC
// timestamp.
package upload
