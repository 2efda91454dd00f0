// Package assets serves the CSS styles and page templates the generator
// renders documentation with.
//
// Three loaders implement the AssetLoader interface. EmbeddedLoader serves
// the compiled-in defaults: the classic and plain styles, and the default
// two-column and linear page templates. FilesystemLoader serves a user
// directory laid out as styles/{name}.css and templates/{name}.html.
// AssetResolver chains the two, custom first with embedded fallback, so a
// user can override one asset and inherit the rest.
//
// Names passed to a loader are bare, without extension or directory. The
// loader appends the extension and picks the subdirectory, which keeps
// paths out of the API entirely: names are validated against a strict
// pattern, and FilesystemLoader additionally resolves symlinks and checks
// that the final path stays under its base directory.
package assets
