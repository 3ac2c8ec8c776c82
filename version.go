package planning

// Version is the library version, overridable at build time with
// -ldflags "-X github.com/reframe-systems/tesseract-planning.Version=...".
var Version = "0.1.0"
