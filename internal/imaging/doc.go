// Package imaging provides the image codec and compositing primitives for
// sprite generation.
//
// The codec decodes and encodes the three supported raster formats (PNG,
// JPEG, GIF). Decoder selection is strict: it is driven by the file
// extension alone, never by sniffing file contents, so a PNG payload behind
// a .jpg name is a decode error rather than a silent success.
//
// The compositor stacks two decoded images vertically on a fresh truecolor
// canvas. Placement is a plain overwrite copy with no alpha blending: source
// pixel values replace canvas pixels unconditionally within the pasted
// rectangle.
//
// # Error Handling
//
// Failures wrap one of the package sentinels (ErrUnreadableFile,
// ErrUnrecognizedFormat, ErrEncode, ErrComposition) so callers can classify
// them with errors.Is.
package imaging
